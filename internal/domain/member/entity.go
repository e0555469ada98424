package member

import (
	"time"

	"github.com/shopspring/decimal"
)

// Member is a partner or stakeholder with a running balance against the
// parent company.
type Member struct {
	ID        string
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberTransfer pays money from the parent balance into a member balance.
type MemberTransfer struct {
	ID        string
	MemberID  string
	Amount    decimal.Decimal
	Note      *string
	Date      *string
	CreatedAt time.Time

	MemberName *string
}
