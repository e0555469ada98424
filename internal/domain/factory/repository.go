package factory

import (
	"context"

	"github.com/shopspring/decimal"
)

// SettingsRepository manages the singleton factory balance row.
type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	AdjustBalance(ctx context.Context, delta decimal.Decimal) error
}

type FundEntryRepository interface {
	Create(ctx context.Context, e FundEntry) (FundEntry, error)
	GetByID(ctx context.Context, id string) (FundEntry, error)
	List(ctx context.Context) ([]FundEntry, error)
	Delete(ctx context.Context, id string) error
}

type WorkshopExpenseRepository interface {
	Create(ctx context.Context, e WorkshopExpense) (WorkshopExpense, error)
	GetByID(ctx context.Context, id string) (WorkshopExpense, error)
	List(ctx context.Context, startDate, endDate *string) ([]WorkshopExpense, error)
	UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

type StockItemRepository interface {
	Create(ctx context.Context, item StockItem) (StockItem, error)
	GetByID(ctx context.Context, id string) (StockItem, error)
	ListByKind(ctx context.Context, kind StockKind) ([]StockItem, error)
	AdjustQuantity(ctx context.Context, id string, delta decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

type StockPurchaseRepository interface {
	Create(ctx context.Context, p StockPurchase) (StockPurchase, error)
	GetByID(ctx context.Context, id string) (StockPurchase, error)
	ListByItem(ctx context.Context, itemID string) ([]StockPurchase, error)
	Delete(ctx context.Context, id string) error
}

type StockConsumptionRepository interface {
	Create(ctx context.Context, c StockConsumption) (StockConsumption, error)
	GetByID(ctx context.Context, id string) (StockConsumption, error)
	ListByItem(ctx context.Context, itemID string) ([]StockConsumption, error)
	Delete(ctx context.Context, id string) error
}
