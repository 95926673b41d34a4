package domain

import "time"

// Role names seeded by migration.
const (
	RoleOwner  = "owner"
	RoleTenant = "tenant"
)

type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
