package project

import (
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	ID        string
	Name      string
	Balance   decimal.Decimal
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type ProjectTransaction struct {
	ID        string
	ProjectID string
	Type      TransactionType
	Title     string
	Amount    decimal.Decimal
	Note      *string
	Date      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NetEffect is the signed contribution this transaction made to the project
// and parent balances.
func (t ProjectTransaction) NetEffect() decimal.Decimal {
	if t.Type == TransactionExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
