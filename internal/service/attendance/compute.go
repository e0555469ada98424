package attendance

import (
	"time"

	"github.com/tadbir-app/tadbir-backend-go/internal/domain/attendance"
)

// duplicateScanWindow rejects bounce scans from badge readers that fire twice.
const duplicateScanWindow = 10 * time.Minute

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// shiftMinute converts an HH:MM shift boundary to minutes past midnight.
// Shift times are validated on write, so a parse failure means zero.
func shiftMinute(hhmm string) int {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// checkInResult derives the late minutes and status for an "in" punch.
// Workers without a shift are never late.
func checkInResult(shift *attendance.WorkShift, at time.Time) (lateMinutes int, status attendance.DayStatus) {
	if shift == nil {
		return 0, attendance.StatusPresent
	}

	start := shiftMinute(shift.StartTime)
	now := minuteOfDay(at)
	if now > start+shift.LateToleranceMinutes {
		return now - start, attendance.StatusLate
	}
	return 0, attendance.StatusPresent
}

// checkOutResult derives early-leave and overtime minutes for an "out" punch.
// lateMinutes carries over from check-in and still marks the day late.
func checkOutResult(shift *attendance.WorkShift, lateMinutes int, at time.Time) (earlyLeaveMinutes, overtimeMinutes int, status attendance.DayStatus) {
	status = attendance.StatusPresent
	if lateMinutes > 0 {
		status = attendance.StatusLate
	}
	if shift == nil {
		return 0, 0, status
	}

	end := shiftMinute(shift.EndTime)
	now := minuteOfDay(at)

	if now < end-shift.EarlyLeaveMinutes {
		earlyLeaveMinutes = end - now
		status = attendance.StatusLate
	}
	if ot := now - end - shift.OvertimeAfterMinutes; ot > 0 {
		overtimeMinutes = ot
	}
	return earlyLeaveMinutes, overtimeMinutes, status
}
