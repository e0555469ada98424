package expense

import "errors"

var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrExternalFundNotFound = errors.New("external fund record not found")
	ErrInvalidFundDirection = errors.New("direction must be incoming or outgoing")
)
