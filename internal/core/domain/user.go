package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleRegular = "regular"
)

// User models an authenticated actor in the system. Role is assigned at
// registration (always RoleRegular) and can only be changed out of band,
// directly in the database.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// CanDelete reports whether the user may perform delete-class operations.
// This is the single authorization gate for destructive actions; every
// delete path (assets, customers, manufacturers) goes through it.
func (u *User) CanDelete() bool {
	return u != nil && u.Role == RoleAdmin
}
