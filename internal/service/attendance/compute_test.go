package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/attendance"
)

func at(hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2026-03-02 "+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func testShift() *attendance.WorkShift {
	return &attendance.WorkShift{
		Name:                 "morning",
		StartTime:            "08:00",
		EndTime:              "17:00",
		LateToleranceMinutes: 15,
		EarlyLeaveMinutes:    30,
		OvertimeAfterMinutes: 30,
	}
}

func TestCheckInResult(t *testing.T) {
	cases := []struct {
		name       string
		shift      *attendance.WorkShift
		punch      string
		wantLate   int
		wantStatus attendance.DayStatus
	}{
		{"on time", testShift(), "07:55", 0, attendance.StatusPresent},
		{"inside tolerance", testShift(), "08:10", 0, attendance.StatusPresent},
		{"at tolerance boundary", testShift(), "08:15", 0, attendance.StatusPresent},
		// Late minutes count from shift start, not from the tolerance edge.
		{"one past tolerance", testShift(), "08:16", 16, attendance.StatusLate},
		{"very late", testShift(), "10:30", 150, attendance.StatusLate},
		{"no shift", nil, "11:00", 0, attendance.StatusPresent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			late, status := checkInResult(tc.shift, at(tc.punch))
			assert.Equal(t, tc.wantLate, late)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestCheckOutResult(t *testing.T) {
	cases := []struct {
		name         string
		shift        *attendance.WorkShift
		carriedLate  int
		punch        string
		wantEarly    int
		wantOvertime int
		wantStatus   attendance.DayStatus
	}{
		{"normal leave", testShift(), 0, "17:00", 0, 0, attendance.StatusPresent},
		{"inside early tolerance", testShift(), 0, "16:45", 0, 0, attendance.StatusPresent},
		{"at early boundary", testShift(), 0, "16:30", 0, 0, attendance.StatusPresent},
		// Early minutes count from shift end, not from the tolerance edge.
		{"one before boundary", testShift(), 0, "16:29", 31, 0, attendance.StatusLate},
		{"left mid-afternoon", testShift(), 0, "15:00", 120, 0, attendance.StatusLate},
		{"overtime under threshold", testShift(), 0, "17:25", 0, 0, attendance.StatusPresent},
		{"overtime past threshold", testShift(), 0, "18:00", 0, 30, attendance.StatusPresent},
		{"carried late marks day late", testShift(), 20, "17:00", 0, 0, attendance.StatusLate},
		{"no shift", nil, 0, "13:00", 0, 0, attendance.StatusPresent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			early, overtime, status := checkOutResult(tc.shift, tc.carriedLate, at(tc.punch))
			assert.Equal(t, tc.wantEarly, early)
			assert.Equal(t, tc.wantOvertime, overtime)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}
