package debt

import (
	"context"

	"github.com/shopspring/decimal"
)

type DebtRepository interface {
	Create(ctx context.Context, d ExternalDebt) (ExternalDebt, error)
	GetByID(ctx context.Context, id string) (ExternalDebt, error)
	List(ctx context.Context) ([]ExternalDebt, error)
	AdjustPaid(ctx context.Context, id string, delta decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

type DebtPaymentRepository interface {
	Create(ctx context.Context, p DebtPayment) (DebtPayment, error)
	GetByID(ctx context.Context, id string) (DebtPayment, error)
	ListByDebt(ctx context.Context, debtID string) ([]DebtPayment, error)
	Delete(ctx context.Context, id string) error
	DeleteByDebt(ctx context.Context, debtID string) error
}
