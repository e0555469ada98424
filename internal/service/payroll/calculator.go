package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/attendance"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/payroll"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/worker"
)

// Deduction rates per penalty tier, in currency units per penalty day.
var (
	rateAbsenceAtBoundary = decimal.NewFromInt(2000)
	rateLateAtBoundary    = decimal.NewFromInt(1000)
	rateAbsenceBelow      = decimal.NewFromInt(1000)
	rateLateBelow         = decimal.NewFromInt(500)

	penaltyBoundary = decimal.NewFromInt(2)
)

// tally is the per-worker walk over the calendar window. Thursdays, Fridays
// and holidays never count; a missing or absent record on a counted day is an
// absence, weighted double on Saturdays.
type tally struct {
	absenceDays     decimal.Decimal
	lateDays        decimal.Decimal
	daysPresent     int
	overtimeMinutes int
}

func tallyWindow(workerID string, dayIndex map[string]attendance.Day, holidays map[string]struct{}, start, end time.Time) tally {
	t := tally{absenceDays: decimal.Zero, lateDays: decimal.Zero}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd == time.Thursday || wd == time.Friday {
			continue
		}
		date := d.Format("2006-01-02")
		if _, ok := holidays[date]; ok {
			continue
		}

		day, ok := dayIndex[workerID+"|"+date]
		if !ok || day.Status == attendance.StatusAbsent {
			if wd == time.Saturday {
				t.absenceDays = t.absenceDays.Add(attendance.PenaltyAbsenceSaturday)
			} else {
				t.absenceDays = t.absenceDays.Add(attendance.PenaltyAbsenceWeekday)
			}
			continue
		}

		t.daysPresent++
		t.overtimeMinutes += day.OvertimeMinutes
		if day.Status == attendance.StatusLate {
			t.lateDays = t.lateDays.Add(attendance.PenaltyLate)
		}
	}
	return t
}

// bonusFigures applies the tiered deduction rule to a worker's tally.
func bonusFigures(baseBonus, absenceDays, lateDays decimal.Decimal) (deductions, finalBonus decimal.Decimal) {
	totalPenalty := absenceDays.Add(lateDays)

	switch {
	case totalPenalty.GreaterThan(penaltyBoundary):
		return baseBonus, decimal.Zero
	case totalPenalty.Equal(penaltyBoundary):
		deductions = absenceDays.Mul(rateAbsenceAtBoundary).Add(lateDays.Mul(rateLateAtBoundary))
	default:
		deductions = absenceDays.Mul(rateAbsenceBelow).Add(lateDays.Mul(rateLateBelow))
	}

	finalBonus = baseBonus.Sub(deductions)
	if finalBonus.IsNegative() {
		finalBonus = decimal.Zero
	}
	return deductions, finalBonus
}

func indexDays(days []attendance.Day) map[string]attendance.Day {
	index := make(map[string]attendance.Day, len(days))
	for _, d := range days {
		index[d.WorkerID+"|"+d.Date] = d
	}
	return index
}

func indexHolidays(holidays []attendance.Holiday) map[string]struct{} {
	index := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		index[h.Date] = struct{}{}
	}
	return index
}

func countWarnings(warnings []attendance.Warning) map[string]int {
	counts := make(map[string]int)
	for _, w := range warnings {
		counts[w.WorkerID]++
	}
	return counts
}

// ComputeBonus derives each worker's bonus row for the window. Inputs are
// expected to be pre-filtered to the window; nothing is persisted.
func ComputeBonus(workers []worker.Worker, days []attendance.Day, holidays []attendance.Holiday, warnings []attendance.Warning, start, end time.Time) []payroll.BonusRow {
	dayIndex := indexDays(days)
	holidaySet := indexHolidays(holidays)
	warningCounts := countWarnings(warnings)

	rows := make([]payroll.BonusRow, 0, len(workers))
	for _, w := range workers {
		t := tallyWindow(w.ID, dayIndex, holidaySet, start, end)

		warningDays := decimal.NewFromInt(int64(warningCounts[w.ID]))
		lateDays := t.lateDays.Add(warningDays.Mul(attendance.PenaltyWarning))

		baseBonus := w.EffectiveBaseBonus()
		deductions, finalBonus := bonusFigures(baseBonus, t.absenceDays, lateDays)

		rows = append(rows, payroll.BonusRow{
			WorkerID:    w.ID,
			Name:        w.Name,
			Number:      w.Number,
			BaseBonus:   baseBonus,
			AbsenceDays: t.absenceDays,
			LateDays:    lateDays,
			WarningDays: warningDays,
			Deductions:  deductions,
			FinalBonus:  finalBonus,
		})
	}
	return rows
}

var minutesPerHour = decimal.NewFromInt(60)

// ComputeStatement derives the full salary statement per worker. advances
// maps worker id to the sum of advance transactions in the window.
func ComputeStatement(workers []worker.Worker, days []attendance.Day, holidays []attendance.Holiday, warnings []attendance.Warning, advances map[string]decimal.Decimal, start, end time.Time) []payroll.StatementRow {
	dayIndex := indexDays(days)
	holidaySet := indexHolidays(holidays)
	warningCounts := countWarnings(warnings)

	rows := make([]payroll.StatementRow, 0, len(workers))
	for _, w := range workers {
		t := tallyWindow(w.ID, dayIndex, holidaySet, start, end)

		warningDays := decimal.NewFromInt(int64(warningCounts[w.ID]))
		lateDays := t.lateDays.Add(warningDays.Mul(attendance.PenaltyWarning))
		_, finalBonus := bonusFigures(w.EffectiveBaseBonus(), t.absenceDays, lateDays)

		overtimeHours := decimal.NewFromInt(int64(t.overtimeMinutes)).Div(minutesPerHour).Round(2)
		overtimeAmount := overtimeHours.Mul(w.OvertimeRate)

		// The wage is a flat monthly figure, not prorated by days present.
		deserved := w.Wage
		totalDeserved := deserved.Add(overtimeAmount).Add(finalBonus)

		paid, ok := advances[w.ID]
		if !ok {
			paid = decimal.Zero
		}

		rows = append(rows, payroll.StatementRow{
			WorkerID:             w.ID,
			Name:                 w.Name,
			Number:               w.Number,
			DaysPresent:          t.daysPresent,
			AbsenceDays:          t.absenceDays,
			LateDays:             lateDays,
			WarningDays:          warningDays,
			TotalOvertimeMinutes: t.overtimeMinutes,
			OvertimeHours:        overtimeHours,
			OvertimeAmount:       overtimeAmount,
			DeservedAmount:       deserved,
			FinalBonus:           finalBonus,
			Advances:             paid,
			TotalDeserved:        totalDeserved,
			TotalPaid:            paid,
			Remaining:            totalDeserved.Sub(paid),
		})
	}
	return rows
}
