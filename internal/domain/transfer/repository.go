package transfer

import "context"

type TransferRepository interface {
	Create(ctx context.Context, t Transfer) (Transfer, error)
	GetByID(ctx context.Context, id string) (Transfer, error)
	List(ctx context.Context, filter ListFilter) ([]Transfer, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	CompanyID *string
	Status    *Status
	StartDate *string
	EndDate   *string
}
