package domain

import "errors"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models an authenticated actor in the system.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
