package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/attendance"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/worker"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// 2026-03-01 is a Sunday, so the window Sun..Sat contains exactly one
// Thursday (03-05), one Friday (03-06) and one Saturday (03-07).
var (
	weekStart = date("2026-03-01")
	weekEnd   = date("2026-03-07")
)

func dayRow(workerID, day string, status attendance.DayStatus, overtime int) attendance.Day {
	return attendance.Day{
		WorkerID:        workerID,
		Date:            day,
		Status:          status,
		OvertimeMinutes: overtime,
	}
}

func TestBonusFigures_Tiers(t *testing.T) {
	base := d("5000")

	cases := []struct {
		name           string
		absence        string
		late           string
		wantDeductions string
		wantFinal      string
	}{
		{"no penalty", "0", "0", "0", "5000"},
		{"below boundary uses low rates", "1.5", "0", "1500", "3500"},
		{"late only below boundary", "0", "0.5", "250", "4750"},
		{"exactly two uses boundary rates", "1.5", "0.5", "3500", "1500"},
		{"above two forfeits everything", "2", "0.5", "5000", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deductions, final := bonusFigures(base, d(tc.absence), d(tc.late))
			assert.True(t, deductions.Equal(d(tc.wantDeductions)), "deductions = %s, want %s", deductions, tc.wantDeductions)
			assert.True(t, final.Equal(d(tc.wantFinal)), "final = %s, want %s", final, tc.wantFinal)
		})
	}
}

func TestComputeBonus_SkipsWeekendsAndHolidays(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Ali"}

	// Present Sun-Wed; 03-07 (Saturday) is a holiday; Thu+Fri never count.
	days := []attendance.Day{
		dayRow("w1", "2026-03-01", attendance.StatusPresent, 0),
		dayRow("w1", "2026-03-02", attendance.StatusPresent, 0),
		dayRow("w1", "2026-03-03", attendance.StatusPresent, 0),
		dayRow("w1", "2026-03-04", attendance.StatusPresent, 0),
	}
	holidays := []attendance.Holiday{{Date: "2026-03-07"}}

	rows := ComputeBonus([]worker.Worker{w}, days, holidays, nil, weekStart, weekEnd)
	require.Len(t, rows, 1)

	assert.True(t, rows[0].AbsenceDays.IsZero(), "absence = %s", rows[0].AbsenceDays)
	assert.True(t, rows[0].LateDays.IsZero())
	assert.True(t, rows[0].FinalBonus.Equal(worker.DefaultBaseBonus))
}

func TestComputeBonus_AbsenceWeights(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Ali"}

	// Present Sun-Tue, missing record Wednesday (1.5) and Saturday (2.0).
	days := []attendance.Day{
		dayRow("w1", "2026-03-01", attendance.StatusPresent, 0),
		dayRow("w1", "2026-03-02", attendance.StatusPresent, 0),
		dayRow("w1", "2026-03-03", attendance.StatusPresent, 0),
	}

	rows := ComputeBonus([]worker.Worker{w}, days, nil, nil, weekStart, weekEnd)
	require.Len(t, rows, 1)

	assert.True(t, rows[0].AbsenceDays.Equal(d("3.5")), "absence = %s", rows[0].AbsenceDays)
	// 3.5 > 2: full forfeiture.
	assert.True(t, rows[0].Deductions.Equal(worker.DefaultBaseBonus))
	assert.True(t, rows[0].FinalBonus.IsZero())
}

func TestComputeBonus_ExplicitAbsentEqualsMissing(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Ali"}

	withRecord := ComputeBonus([]worker.Worker{w}, []attendance.Day{
		dayRow("w1", "2026-03-02", attendance.StatusAbsent, 0),
	}, nil, nil, date("2026-03-02"), date("2026-03-02"))
	withoutRecord := ComputeBonus([]worker.Worker{w}, nil, nil, nil, date("2026-03-02"), date("2026-03-02"))

	require.Len(t, withRecord, 1)
	require.Len(t, withoutRecord, 1)
	assert.True(t, withRecord[0].AbsenceDays.Equal(withoutRecord[0].AbsenceDays))
	assert.True(t, withRecord[0].AbsenceDays.Equal(d("1.5")))
}

func TestComputeBonus_LateAndWarnings(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Ali"}

	// Late Monday (0.5) plus one warning (0.5): total penalty 1.0, low rates.
	days := []attendance.Day{
		dayRow("w1", "2026-03-01", attendance.StatusPresent, 0),
		dayRow("w1", "2026-03-02", attendance.StatusLate, 0),
		dayRow("w1", "2026-03-03", attendance.StatusPresent, 0),
		dayRow("w1", "2026-03-04", attendance.StatusPresent, 0),
		dayRow("w1", "2026-03-07", attendance.StatusPresent, 0),
	}
	warnings := []attendance.Warning{{WorkerID: "w1", Date: "2026-03-03"}}

	rows := ComputeBonus([]worker.Worker{w}, days, nil, warnings, weekStart, weekEnd)
	require.Len(t, rows, 1)

	assert.True(t, rows[0].LateDays.Equal(d("1")), "late = %s", rows[0].LateDays)
	assert.True(t, rows[0].WarningDays.Equal(d("1")))
	// 1.0 × 500 = 500 off the default 5000.
	assert.True(t, rows[0].Deductions.Equal(d("500")))
	assert.True(t, rows[0].FinalBonus.Equal(d("4500")))
}

func TestComputeBonus_CustomBaseBonus(t *testing.T) {
	bonus := d("8000")
	w := worker.Worker{ID: "w1", Name: "Ali", BaseBonus: &bonus}

	rows := ComputeBonus([]worker.Worker{w}, []attendance.Day{
		dayRow("w1", "2026-03-02", attendance.StatusPresent, 0),
	}, nil, nil, date("2026-03-02"), date("2026-03-02"))
	require.Len(t, rows, 1)
	assert.True(t, rows[0].FinalBonus.Equal(bonus))
}

func TestComputeStatement_OvertimeAndRemaining(t *testing.T) {
	w := worker.Worker{
		ID:           "w1",
		Name:         "Ali",
		Wage:         d("30000"),
		OvertimeRate: d("50"),
	}

	// Present on every counted day; 90 + 45 = 135 overtime minutes.
	days := []attendance.Day{
		dayRow("w1", "2026-03-01", attendance.StatusPresent, 90),
		dayRow("w1", "2026-03-02", attendance.StatusPresent, 45),
		dayRow("w1", "2026-03-03", attendance.StatusPresent, 0),
		dayRow("w1", "2026-03-04", attendance.StatusPresent, 0),
		dayRow("w1", "2026-03-07", attendance.StatusPresent, 0),
	}
	advances := map[string]decimal.Decimal{"w1": d("10000")}

	rows := ComputeStatement([]worker.Worker{w}, days, nil, nil, advances, weekStart, weekEnd)
	require.Len(t, rows, 1)
	row := rows[0]

	assert.Equal(t, 5, row.DaysPresent)
	assert.Equal(t, 135, row.TotalOvertimeMinutes)
	// 135/60 = 2.25 hours × 50 = 112.5 on top of the flat wage and full bonus.
	assert.True(t, row.OvertimeHours.Equal(d("2.25")), "hours = %s", row.OvertimeHours)
	assert.True(t, row.OvertimeAmount.Equal(d("112.5")))
	assert.True(t, row.DeservedAmount.Equal(d("30000")))
	assert.True(t, row.FinalBonus.Equal(worker.DefaultBaseBonus))
	assert.True(t, row.TotalDeserved.Equal(d("35112.5")), "deserved = %s", row.TotalDeserved)
	assert.True(t, row.TotalPaid.Equal(d("10000")))
	assert.True(t, row.Remaining.Equal(d("25112.5")), "remaining = %s", row.Remaining)
}

func TestComputeStatement_OvertimeRounding(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Ali", Wage: d("0"), OvertimeRate: d("60")}

	// 100 minutes rounds to 1.67 hours, not 1.666...
	days := []attendance.Day{dayRow("w1", "2026-03-02", attendance.StatusPresent, 100)}

	rows := ComputeStatement([]worker.Worker{w}, days, nil, nil, nil, date("2026-03-02"), date("2026-03-02"))
	require.Len(t, rows, 1)
	assert.True(t, rows[0].OvertimeHours.Equal(d("1.67")), "hours = %s", rows[0].OvertimeHours)
	assert.True(t, rows[0].OvertimeAmount.Equal(d("100.2")))
}

func TestComputeStatement_LateStillCountsPresent(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Ali", Wage: d("1000"), OvertimeRate: d("10")}

	days := []attendance.Day{
		dayRow("w1", "2026-03-02", attendance.StatusLate, 30),
		dayRow("w1", "2026-03-03", attendance.StatusAbsent, 0),
	}

	rows := ComputeStatement([]worker.Worker{w}, days, nil, nil, nil, date("2026-03-02"), date("2026-03-03"))
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].DaysPresent)
	assert.Equal(t, 30, rows[0].TotalOvertimeMinutes)
	assert.True(t, rows[0].AbsenceDays.Equal(d("1.5")))
}
