package truck

import (
	"time"

	"github.com/shopspring/decimal"
)

// Truck carries its own running balance plus the tunable parameters the trip
// statement computations use.
type Truck struct {
	ID                   string
	Name                 string
	PlateNumber          *string
	Balance              decimal.Decimal
	FuelFormula          decimal.Decimal // expected fuel cost per km
	DriverWage           decimal.Decimal
	DriverCommissionRate decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type ExpenseType string

const (
	ExpenseTypeIncome  ExpenseType = "income"
	ExpenseTypeExpense ExpenseType = "expense"
)

type TruckExpense struct {
	ID        string
	TruckID   string
	Type      ExpenseType
	Title     string
	Amount    decimal.Decimal
	Note      *string
	Date      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TruckTrip captures one round trip's economics. NetResult is the single
// figure propagated to the truck and parent balances.
type TruckTrip struct {
	ID                string
	TruckID           string
	Destination       *string
	OldOdometer       decimal.Decimal
	NewOdometer       decimal.Decimal
	TripFare          decimal.Decimal
	FuelExpense       decimal.Decimal
	FoodExpense       decimal.Decimal
	SparePartsExpense decimal.Decimal
	DriverWageEntry   decimal.Decimal
	CommissionEntry   decimal.Decimal
	ExpectedFuel      decimal.Decimal // km x fuel formula, informational
	NetResult         decimal.Decimal
	Date              *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DistanceKM is the odometer delta for the trip.
func (t TruckTrip) DistanceKM() decimal.Decimal {
	return t.NewOdometer.Sub(t.OldOdometer)
}

// ComputeDerived fills ExpectedFuel and NetResult from the itemized figures.
func (t *TruckTrip) ComputeDerived(fuelFormula decimal.Decimal) {
	t.ExpectedFuel = t.DistanceKM().Mul(fuelFormula)
	t.NetResult = t.TripFare.
		Sub(t.FuelExpense).
		Sub(t.FoodExpense).
		Sub(t.SparePartsExpense).
		Sub(t.DriverWageEntry).
		Sub(t.CommissionEntry)
}
