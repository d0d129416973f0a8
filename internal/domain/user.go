package domain

import (
	"strings"
	"time"
)

// Role separates administrators from event clients.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// User is the single account model; the role column drives authorization.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	City         string
	State        string
	Pincode      string
	Birthday     *time.Time
	Active       bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName returns first+last name, falling back to the username.
func (u *User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}
