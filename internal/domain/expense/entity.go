package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a general expense paid out of the parent company balance.
type Expense struct {
	ID        string
	Title     string
	Amount    decimal.Decimal
	Note      *string
	Date      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type FundDirection string

const (
	FundIncoming FundDirection = "incoming"
	FundOutgoing FundDirection = "outgoing"
)

// ExternalFund is money entering or leaving the group from outside parties.
type ExternalFund struct {
	ID        string
	Party     string
	Direction FundDirection
	Amount    decimal.Decimal
	Note      *string
	Date      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
