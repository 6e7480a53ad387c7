package models

import "fmt"

// Role decides which profile table a user owns: clients own a Client row,
// stylists a Stylist row, admins none.
type Role string

const (
	RoleClient  Role = "client"
	RoleStylist Role = "stylist"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleStylist, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleStylist, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
