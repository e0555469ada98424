package expense

import (
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

type CreateExpenseRequest struct {
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Note   *string         `json:"note,omitempty"`
	Date   *string         `json:"date,omitempty"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
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

type UpdateExpenseRequest struct {
	ID     string           `json:"-"`
	Title  *string          `json:"title,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Note   *string          `json:"note,omitempty"`
}

func (r *UpdateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title must not be empty"})
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateExternalFundRequest struct {
	Party     string          `json:"party"`
	Direction string          `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note,omitempty"`
	Date      *string         `json:"date,omitempty"`
}

func (r *CreateExternalFundRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Party) {
		errs = append(errs, validator.ValidationError{Field: "party", Message: "party is required"})
	}
	if !validator.IsInSlice(r.Direction, []string{string(FundIncoming), string(FundOutgoing)}) {
		errs = append(errs, validator.ValidationError{Field: "direction", Message: "direction must be incoming or outgoing"})
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

type ExpenseResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note,omitempty"`
	Date      *string         `json:"date,omitempty"`
	CreatedAt string          `json:"created_at"`
}

func ToExpenseResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID,
		Title:     e.Title,
		Amount:    e.Amount,
		Note:      e.Note,
		Date:      e.Date,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type ExternalFundResponse struct {
	ID        string          `json:"id"`
	Party     string          `json:"party"`
	Direction string          `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note,omitempty"`
	Date      *string         `json:"date,omitempty"`
	CreatedAt string          `json:"created_at"`
}

func ToExternalFundResponse(f ExternalFund) ExternalFundResponse {
	return ExternalFundResponse{
		ID:        f.ID,
		Party:     f.Party,
		Direction: string(f.Direction),
		Amount:    f.Amount,
		Note:      f.Note,
		Date:      f.Date,
		CreatedAt: f.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
