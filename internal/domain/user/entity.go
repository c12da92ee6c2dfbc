package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
)

// ValidRoles lists the assignable roles.
var ValidRoles = []string{string(RoleEmployee), string(RoleHR)}

// User entity
type User struct {
	ID        string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   *string   `json:"picture"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsHR reports whether the user holds the hr role.
func (u User) IsHR() bool {
	return u.Role == RoleHR
}
