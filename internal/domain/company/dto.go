package company

import (
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	Name string `json:"name"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompanyRequest struct {
	Name *string `json:"name,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompanyResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Balance      decimal.Decimal `json:"balance"`
	DebtToParent decimal.Decimal `json:"debt_to_parent"`
	IsParent     bool            `json:"is_parent"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		Balance:      c.Balance,
		DebtToParent: c.DebtToParent,
		IsParent:     c.IsParent,
		CreatedAt:    c.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    c.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
