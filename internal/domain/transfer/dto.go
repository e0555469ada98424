package transfer

import (
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

type CreateTransferRequest struct {
	FromCompanyID string          `json:"from_company_id"`
	ToCompanyID   string          `json:"to_company_id"`
	Amount        decimal.Decimal `json:"amount"`
	Note          *string         `json:"note,omitempty"`
	Date          *string         `json:"date,omitempty"`
}

func (r *CreateTransferRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FromCompanyID) {
		errs = append(errs, validator.ValidationError{Field: "from_company_id", Message: "from_company_id is required"})
	}
	if validator.IsEmpty(r.ToCompanyID) {
		errs = append(errs, validator.ValidationError{Field: "to_company_id", Message: "to_company_id is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
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

type TransferResponse struct {
	ID              string          `json:"id"`
	FromCompanyID   string          `json:"from_company_id"`
	FromCompanyName *string         `json:"from_company_name,omitempty"`
	ToCompanyID     string          `json:"to_company_id"`
	ToCompanyName   *string         `json:"to_company_name,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	Note            *string         `json:"note,omitempty"`
	Date            *string         `json:"date,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

func ToResponse(t Transfer) TransferResponse {
	return TransferResponse{
		ID:              t.ID,
		FromCompanyID:   t.FromCompanyID,
		FromCompanyName: t.FromCompanyName,
		ToCompanyID:     t.ToCompanyID,
		ToCompanyName:   t.ToCompanyName,
		Amount:          t.Amount,
		Status:          string(t.Status),
		Note:            t.Note,
		Date:            t.Date,
		CreatedAt:       t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
