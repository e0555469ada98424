package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

type PeriodRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BonusRow is one worker's bonus figures for the requested window. Never
// persisted; computed per request.
type BonusRow struct {
	WorkerID    string          `json:"worker_id"`
	Name        string          `json:"name"`
	Number      *string         `json:"number,omitempty"`
	BaseBonus   decimal.Decimal `json:"base_bonus"`
	AbsenceDays decimal.Decimal `json:"absence_days"`
	LateDays    decimal.Decimal `json:"late_days"`
	WarningDays decimal.Decimal `json:"warning_days"`
	Deductions  decimal.Decimal `json:"deductions"`
	FinalBonus  decimal.Decimal `json:"final_bonus"`
}

// StatementRow extends BonusRow with the full salary statement figures.
type StatementRow struct {
	WorkerID             string          `json:"worker_id"`
	Name                 string          `json:"name"`
	Number               *string         `json:"number,omitempty"`
	DaysPresent          int             `json:"days_present"`
	AbsenceDays          decimal.Decimal `json:"absence_days"`
	LateDays             decimal.Decimal `json:"late_days"`
	WarningDays          decimal.Decimal `json:"warning_days"`
	TotalOvertimeMinutes int             `json:"total_overtime_minutes"`
	OvertimeHours        decimal.Decimal `json:"overtime_hours"`
	OvertimeAmount       decimal.Decimal `json:"overtime_amount"`
	DeservedAmount       decimal.Decimal `json:"deserved_amount"`
	FinalBonus           decimal.Decimal `json:"final_bonus"`
	Advances             decimal.Decimal `json:"advances"`
	TotalDeserved        decimal.Decimal `json:"total_deserved"`
	TotalPaid            decimal.Decimal `json:"total_paid"`
	Remaining            decimal.Decimal `json:"remaining"`
}
