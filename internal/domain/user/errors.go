package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already taken")
	ErrPermissionDenied       = errors.New("insufficient permissions")
	ErrParentCompanyRequired  = errors.New("parent company privilege required")
	ErrOwnerPrivilegeRequired = errors.New("owner privilege required")
)
