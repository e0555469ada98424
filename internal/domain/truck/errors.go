package truck

import "errors"

var (
	ErrTruckNotFound        = errors.New("truck not found")
	ErrTruckExpenseNotFound = errors.New("truck expense not found")
	ErrTripNotFound         = errors.New("truck trip not found")
	ErrInvalidExpenseType   = errors.New("expense type must be income or expense")
	ErrOdometerBackwards    = errors.New("new odometer must not be less than old odometer")
)
