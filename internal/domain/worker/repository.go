package worker

import (
	"context"

	"github.com/shopspring/decimal"
)

type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	List(ctx context.Context) ([]Worker, error)
	Update(ctx context.Context, id string, req UpdateWorkerRequest) error
	Delete(ctx context.Context, id string) error
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error
}

type WorkerTransactionRepository interface {
	Create(ctx context.Context, t WorkerTransaction) (WorkerTransaction, error)
	GetByID(ctx context.Context, id string) (WorkerTransaction, error)
	ListByWorker(ctx context.Context, workerID string, startDate, endDate *string) ([]WorkerTransaction, error)

	// ListByTypeInRange feeds the salary statement's advances sum.
	ListByTypeInRange(ctx context.Context, txType TransactionType, startDate, endDate string) ([]WorkerTransaction, error)
	Delete(ctx context.Context, id string) error
}
