package project

import (
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name string  `json:"name"`
	Note *string `json:"note,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateTransactionRequest struct {
	ProjectID string          `json:"-"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note,omitempty"`
	Date      *string         `json:"date,omitempty"`
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{string(TransactionIncome), string(TransactionExpense)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be income or expense"})
	}
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

type UpdateTransactionRequest struct {
	ID     string          `json:"-"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *UpdateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Note      *string         `json:"note,omitempty"`
	CreatedAt string          `json:"created_at"`
}

func ToProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Balance:   p.Balance,
		Note:      p.Note,
		CreatedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type TransactionResponse struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note,omitempty"`
	Date      *string         `json:"date,omitempty"`
	CreatedAt string          `json:"created_at"`
}

func ToTransactionResponse(t ProjectTransaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		Type:      string(t.Type),
		Title:     t.Title,
		Amount:    t.Amount,
		Note:      t.Note,
		Date:      t.Date,
		CreatedAt: t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
