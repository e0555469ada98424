package debt

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExternalDebt tracks money owed to an outside creditor. External debts are
// not reflected in the parent balance; only paid_amount moves.
type ExternalDebt struct {
	ID          string
	Creditor    string
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	Note        *string
	Date        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Remaining is total minus paid.
func (d ExternalDebt) Remaining() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount)
}

type DebtPayment struct {
	ID        string
	DebtID    string
	Amount    decimal.Decimal
	Note      *string
	Date      *string
	CreatedAt time.Time
}
