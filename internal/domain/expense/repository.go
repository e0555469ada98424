package expense

import "context"

type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	List(ctx context.Context, startDate, endDate *string) ([]Expense, error)
	UpdateAmount(ctx context.Context, id string, req UpdateExpenseRequest) error
	Delete(ctx context.Context, id string) error
}

type ExternalFundRepository interface {
	Create(ctx context.Context, f ExternalFund) (ExternalFund, error)
	GetByID(ctx context.Context, id string) (ExternalFund, error)
	List(ctx context.Context, startDate, endDate *string) ([]ExternalFund, error)
	Delete(ctx context.Context, id string) error
}
