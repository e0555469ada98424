package worker

import (
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	Name         string           `json:"name"`
	Number       *string          `json:"number,omitempty"`
	Wage         decimal.Decimal  `json:"wage"`
	OvertimeRate decimal.Decimal  `json:"overtime_rate"`
	BaseBonus    *decimal.Decimal `json:"base_bonus,omitempty"`
	ShiftID      *string          `json:"shift_id,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Wage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "wage", Message: "wage must be non-negative"})
	}
	if r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "overtime_rate must be non-negative"})
	}
	if r.BaseBonus != nil && r.BaseBonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_bonus", Message: "base_bonus must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID           string           `json:"-"`
	Name         *string          `json:"name,omitempty"`
	Number       *string          `json:"number,omitempty"`
	Wage         *decimal.Decimal `json:"wage,omitempty"`
	OvertimeRate *decimal.Decimal `json:"overtime_rate,omitempty"`
	BaseBonus    *decimal.Decimal `json:"base_bonus,omitempty"`
	ShiftID      *string          `json:"shift_id,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Wage != nil && r.Wage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "wage", Message: "wage must be non-negative"})
	}
	if r.OvertimeRate != nil && r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "overtime_rate must be non-negative"})
	}
	if r.BaseBonus != nil && r.BaseBonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_bonus", Message: "base_bonus must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateTransactionRequest struct {
	WorkerID string          `json:"-"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Note     *string         `json:"note,omitempty"`
	Date     *string         `json:"date,omitempty"`
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{
		string(TransactionSalary), string(TransactionAdvance), string(TransactionDeduction),
	}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be salary, advance or deduction"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be non-negative"})
	}
	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Number       *string         `json:"number,omitempty"`
	Balance      decimal.Decimal `json:"balance"`
	Wage         decimal.Decimal `json:"wage"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
	BaseBonus    decimal.Decimal `json:"base_bonus"`
	ShiftID      *string         `json:"shift_id,omitempty"`
	CreatedAt    string          `json:"created_at"`
}

// DefaultBaseBonus applies when a worker has no configured bonus.
var DefaultBaseBonus = decimal.NewFromInt(5000)

// EffectiveBaseBonus returns the configured bonus or the default.
func (w Worker) EffectiveBaseBonus() decimal.Decimal {
	if w.BaseBonus == nil {
		return DefaultBaseBonus
	}
	return *w.BaseBonus
}

func ToWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:           w.ID,
		Name:         w.Name,
		Number:       w.Number,
		Balance:      w.Balance,
		Wage:         w.Wage,
		OvertimeRate: w.OvertimeRate,
		BaseBonus:    w.EffectiveBaseBonus(),
		ShiftID:      w.ShiftID,
		CreatedAt:    w.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type TransactionResponse struct {
	ID         string          `json:"id"`
	WorkerID   string          `json:"worker_id"`
	WorkerName *string         `json:"worker_name,omitempty"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note,omitempty"`
	Date       *string         `json:"date,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

func ToTransactionResponse(t WorkerTransaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		WorkerID:   t.WorkerID,
		WorkerName: t.WorkerName,
		Type:       string(t.Type),
		Amount:     t.Amount,
		Note:       t.Note,
		Date:       t.Date,
		CreatedAt:  t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
