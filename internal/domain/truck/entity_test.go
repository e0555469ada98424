package truck

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTripComputeDerived(t *testing.T) {
	trip := TruckTrip{
		OldOdometer:       decimal.NewFromInt(120000),
		NewOdometer:       decimal.NewFromInt(120850),
		TripFare:          decimal.NewFromInt(900000),
		FuelExpense:       decimal.NewFromInt(250000),
		FoodExpense:       decimal.NewFromInt(40000),
		SparePartsExpense: decimal.NewFromInt(35000),
		DriverWageEntry:   decimal.NewFromInt(100000),
		CommissionEntry:   decimal.NewFromInt(45000),
	}

	trip.ComputeDerived(decimal.NewFromInt(300))

	assert.True(t, trip.DistanceKM().Equal(decimal.NewFromInt(850)))
	assert.True(t, trip.ExpectedFuel.Equal(decimal.NewFromInt(255000)))
	// 900000 - (250000+40000+35000+100000+45000)
	assert.True(t, trip.NetResult.Equal(decimal.NewFromInt(430000)))
}

func TestTripComputeDerived_LossMakingTrip(t *testing.T) {
	trip := TruckTrip{
		OldOdometer: decimal.NewFromInt(500),
		NewOdometer: decimal.NewFromInt(700),
		TripFare:    decimal.NewFromInt(100000),
		FuelExpense: decimal.NewFromInt(150000),
	}

	trip.ComputeDerived(decimal.Zero)

	assert.True(t, trip.NetResult.Equal(decimal.NewFromInt(-50000)))
	assert.True(t, trip.ExpectedFuel.IsZero())
}
