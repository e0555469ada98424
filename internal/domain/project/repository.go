package project

import (
	"context"

	"github.com/shopspring/decimal"
)

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context) ([]Project, error)
	Delete(ctx context.Context, id string) error
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error
}

type ProjectTransactionRepository interface {
	Create(ctx context.Context, t ProjectTransaction) (ProjectTransaction, error)
	GetByID(ctx context.Context, id string) (ProjectTransaction, error)
	ListByProject(ctx context.Context, projectID string) ([]ProjectTransaction, error)
	UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) error
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}
