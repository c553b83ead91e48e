package domain

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleLeader   Role = "LEADER"
	RoleEmployee Role = "EMPLOYEE"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLeader, RoleEmployee:
		return true
	}
	return false
}

// Caller is the authenticated principal every service operation acts on behalf of.
type Caller struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	Role           Role
	Name           string
	Email          string
	IPAddress      string
	UserAgent      string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// IsApprover reports whether the caller may resolve pending requests.
func (c Caller) IsApprover() bool {
	return c.Role == RoleAdmin || c.Role == RoleLeader
}
