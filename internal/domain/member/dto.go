package member

import (
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

type CreateMemberRequest struct {
	Name string `json:"name"`
}

func (r *CreateMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateMemberTransferRequest struct {
	MemberID string          `json:"-"`
	Amount   decimal.Decimal `json:"amount"`
	Note     *string         `json:"note,omitempty"`
	Date     *string         `json:"date,omitempty"`
}

func (r *CreateMemberTransferRequest) Validate() error {
	var errs validator.ValidationErrors

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

type MemberResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt string          `json:"created_at"`
}

func ToMemberResponse(m Member) MemberResponse {
	return MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type MemberTransferResponse struct {
	ID         string          `json:"id"`
	MemberID   string          `json:"member_id"`
	MemberName *string         `json:"member_name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note,omitempty"`
	Date       *string         `json:"date,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

func ToMemberTransferResponse(t MemberTransfer) MemberTransferResponse {
	return MemberTransferResponse{
		ID:         t.ID,
		MemberID:   t.MemberID,
		MemberName: t.MemberName,
		Amount:     t.Amount,
		Note:       t.Note,
		Date:       t.Date,
		CreatedAt:  t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
