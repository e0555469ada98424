package user

import "time"

type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

type User struct {
	ID           string
	CompanyID    string
	Username     string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TenantContext carries the acting tenant identity into every service
// operation. Handlers build it from the verified JWT claims; services never
// read claims themselves.
type TenantContext struct {
	CompanyID string
	IsParent  bool
	Role      Role
}

func (t TenantContext) Can(p Permission) bool {
	return HasPermission(t.Role, p)
}
