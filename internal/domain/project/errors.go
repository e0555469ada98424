package project

import "errors"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrTransactionNotFound = errors.New("project transaction not found")
	ErrInvalidType         = errors.New("transaction type must be income or expense")
)
