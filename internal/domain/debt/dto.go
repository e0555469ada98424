package debt

import (
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

type CreateDebtRequest struct {
	Creditor    string          `json:"creditor"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Note        *string         `json:"note,omitempty"`
	Date        *string         `json:"date,omitempty"`
}

func (r *CreateDebtRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Creditor) {
		errs = append(errs, validator.ValidationError{Field: "creditor", Message: "creditor is required"})
	}
	if !r.TotalAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "total_amount must be greater than zero"})
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

type CreatePaymentRequest struct {
	DebtID string          `json:"-"`
	Amount decimal.Decimal `json:"amount"`
	Note   *string         `json:"note,omitempty"`
	Date   *string         `json:"date,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

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

type DebtResponse struct {
	ID          string          `json:"id"`
	Creditor    string          `json:"creditor"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	Remaining   decimal.Decimal `json:"remaining"`
	Note        *string         `json:"note,omitempty"`
	Date        *string         `json:"date,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

func ToDebtResponse(d ExternalDebt) DebtResponse {
	return DebtResponse{
		ID:          d.ID,
		Creditor:    d.Creditor,
		TotalAmount: d.TotalAmount,
		PaidAmount:  d.PaidAmount,
		Remaining:   d.Remaining(),
		Note:        d.Note,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type PaymentResponse struct {
	ID        string          `json:"id"`
	DebtID    string          `json:"debt_id"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note,omitempty"`
	Date      *string         `json:"date,omitempty"`
	CreatedAt string          `json:"created_at"`
}

func ToPaymentResponse(p DebtPayment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		DebtID:    p.DebtID,
		Amount:    p.Amount,
		Note:      p.Note,
		Date:      p.Date,
		CreatedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
