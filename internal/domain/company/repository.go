package company

import (
	"context"

	"github.com/shopspring/decimal"
)

type CompanyRepository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	GetParent(ctx context.Context) (Company, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) error
	Delete(ctx context.Context, id string) error

	// AdjustBalance adds delta to the company balance as a relative update.
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error

	// AdjustBalanceAndDebt moves balance and debt-to-parent in one statement,
	// keeping the two in lockstep on transfer approval.
	AdjustBalanceAndDebt(ctx context.Context, id string, balanceDelta, debtDelta decimal.Decimal) error
}
