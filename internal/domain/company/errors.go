package company

import "errors"

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrParentNotFound    = errors.New("parent company not found")
	ErrCompanyNameExists = errors.New("company name already exists")
)
