package factory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the singleton factory row holding the factory balance.
type Settings struct {
	ID        string
	Balance   decimal.Decimal
	UpdatedAt time.Time
}

type FundDirection string

const (
	FundAdd      FundDirection = "add"
	FundWithdraw FundDirection = "withdraw"
)

// FundEntry is a manual movement between the parent balance and the factory
// balance. Funding the factory debits the parent; withdrawing credits it.
type FundEntry struct {
	ID        string
	Direction FundDirection
	Amount    decimal.Decimal
	Note      *string
	Date      *string
	CreatedAt time.Time
}

type WorkshopExpense struct {
	ID        string
	Title     string
	Amount    decimal.Decimal
	Note      *string
	Date      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StockKind separates the two stock catalogs that share purchase semantics.
type StockKind string

const (
	StockSparePart   StockKind = "spare_part"
	StockRawMaterial StockKind = "raw_material"
)

// StockItem is a spare part or raw material with a quantity balance.
type StockItem struct {
	ID        string
	Kind      StockKind
	Name      string
	Unit      *string
	Quantity  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StockPurchase increases item quantity and debits the factory and parent
// balances by its cost.
type StockPurchase struct {
	ID        string
	ItemID    string
	Quantity  decimal.Decimal
	Cost      decimal.Decimal
	Note      *string
	Date      *string
	CreatedAt time.Time

	ItemName *string
}

// StockConsumption decreases item quantity with no monetary effect.
type StockConsumption struct {
	ID        string
	ItemID    string
	Quantity  decimal.Decimal
	Note      *string
	Date      *string
	CreatedAt time.Time

	ItemName *string
}
