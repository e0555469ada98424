package transfer

import "errors"

var (
	ErrTransferNotFound     = errors.New("transfer not found")
	ErrSameCompany          = errors.New("cannot transfer between the same company")
	ErrTransferNotPending   = errors.New("transfer has already been approved or rejected")
	ErrApprovedNotDeletable = errors.New("processed transfers cannot be deleted")
)
