package worker

import "errors"

var (
	ErrWorkerNotFound         = errors.New("worker not found")
	ErrTransactionNotFound    = errors.New("worker transaction not found")
	ErrInvalidTransactionType = errors.New("transaction type must be salary, advance or deduction")
)
