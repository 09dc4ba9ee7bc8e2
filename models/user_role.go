package models

type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
)

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
