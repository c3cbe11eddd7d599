package domain

// Role of a user in the system
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
)

// IsAdmin returns true if the role may manage courts and bookings
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
