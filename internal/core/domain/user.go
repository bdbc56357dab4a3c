package domain

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Role is a named permission group. Role names are unique; the bootstrap
// seeder creates the baseline roles exactly once.
type Role struct {
	ID   string
	Name string
}

// User models an authenticated actor. Email is the login identifier and the
// password is stored only as a bcrypt hash. Each user holds exactly one role.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Authority derives the single permission token carried by this user,
// e.g. "ROLE_ADMIN" for a user holding the ADMIN role.
func (u *User) Authority() string {
	return "ROLE_" + u.Role.Name
}
