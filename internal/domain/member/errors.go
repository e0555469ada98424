package member

import "errors"

var (
	ErrMemberNotFound         = errors.New("member not found")
	ErrMemberTransferNotFound = errors.New("member transfer not found")
)
