package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker is a factory/site worker with a running balance against the parent
// company plus the wage parameters payroll aggregation reads.
type Worker struct {
	ID           string
	Name         string
	Number       *string
	Balance      decimal.Decimal
	Wage         decimal.Decimal
	OvertimeRate decimal.Decimal
	BaseBonus    *decimal.Decimal // nil means the 5000 default
	ShiftID      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TransactionType string

const (
	TransactionSalary    TransactionType = "salary"
	TransactionAdvance   TransactionType = "advance"
	TransactionDeduction TransactionType = "deduction"
)

// WorkerTransaction moves money between the parent balance and a worker
// balance. Salary and advance pay the worker; deduction claws back.
type WorkerTransaction struct {
	ID        string
	WorkerID  string
	Type      TransactionType
	Amount    decimal.Decimal
	Note      *string
	Date      *string
	CreatedAt time.Time

	WorkerName *string
}
