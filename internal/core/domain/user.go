package domain

import "time"

// Role is an ordered privilege level. The total order staff < manager < admin
// is what every access decision compares against; never compare the string
// values directly.
type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// roleLevels assigns each role its position in the total order.
var roleLevels = map[Role]int{
	RoleStaff:   0,
	RoleManager: 1,
	RoleAdmin:   2,
}

// Roles lists every valid role in ascending order of privilege.
func Roles() []Role {
	return []Role{RoleStaff, RoleManager, RoleAdmin}
}

// ParseRole returns the Role for s, or ErrInvalidRole when s is not one of
// the known roles.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleLevels[r]; !ok {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r grants at least the privilege of min.
// An unknown role never satisfies any minimum.
func (r Role) AtLeast(min Role) bool {
	lvl, ok := roleLevels[r]
	minLvl, minOK := roleLevels[min]
	return ok && minOK && lvl >= minLvl
}

// User models a back-office principal. Guests never have accounts; only
// staff, managers and admins authenticate.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
