package company

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company is one account in the tenant group. Exactly one company per group
// is the parent; nearly every financial event ultimately debits or credits
// the parent balance.
type Company struct {
	ID           string
	Name         string
	Balance      decimal.Decimal
	DebtToParent decimal.Decimal
	IsParent     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
