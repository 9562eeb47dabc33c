package user

import "errors"

var ErrInvalidRole = errors.New("invalid user role")

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStaff:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
