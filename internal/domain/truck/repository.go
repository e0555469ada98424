package truck

import (
	"context"

	"github.com/shopspring/decimal"
)

type TruckRepository interface {
	Create(ctx context.Context, t Truck) (Truck, error)
	GetByID(ctx context.Context, id string) (Truck, error)
	List(ctx context.Context) ([]Truck, error)
	Update(ctx context.Context, id string, req UpdateTruckRequest) error
	Delete(ctx context.Context, id string) error
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error
}

type TruckExpenseRepository interface {
	Create(ctx context.Context, e TruckExpense) (TruckExpense, error)
	GetByID(ctx context.Context, id string) (TruckExpense, error)
	ListByTruck(ctx context.Context, truckID string, startDate, endDate *string) ([]TruckExpense, error)
	UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

type TruckTripRepository interface {
	Create(ctx context.Context, t TruckTrip) (TruckTrip, error)
	GetByID(ctx context.Context, id string) (TruckTrip, error)
	ListByTruck(ctx context.Context, truckID string, startDate, endDate *string) ([]TruckTrip, error)
	Update(ctx context.Context, t TruckTrip) error
	Delete(ctx context.Context, id string) error
}
