package factory

import "errors"

var (
	ErrWorkshopExpenseNotFound = errors.New("workshop expense not found")
	ErrFundEntryNotFound       = errors.New("factory fund entry not found")
	ErrStockItemNotFound       = errors.New("stock item not found")
	ErrPurchaseNotFound        = errors.New("stock purchase not found")
	ErrConsumptionNotFound     = errors.New("stock consumption not found")
	ErrInvalidFundDirection    = errors.New("direction must be add or withdraw")
	ErrInvalidStockKind        = errors.New("stock kind must be spare_part or raw_material")
)
