package transfer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Transfer moves money between two companies in the group. Balance effects
// apply exactly once, at approval: sender balance and debt-to-parent both
// drop by the amount, receiver balance and debt-to-parent both rise by it.
type Transfer struct {
	ID            string
	FromCompanyID string
	ToCompanyID   string
	Amount        decimal.Decimal
	Status        Status
	Note          *string
	Date          *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	FromCompanyName *string
	ToCompanyName   *string
}
