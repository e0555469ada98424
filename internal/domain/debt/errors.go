package debt

import "errors"

var (
	ErrDebtNotFound            = errors.New("external debt not found")
	ErrPaymentNotFound         = errors.New("debt payment not found")
	ErrPaymentExceedsRemaining = errors.New("payment exceeds remaining debt balance")
)
