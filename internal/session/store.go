// Package session holds the client-side authentication state: a cached JWT
// plus the logged-in user, behind a pluggable Store. The Guard decides
// whether that state still counts as authenticated.
package session

// User is the cached identity half of a session.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
}

// Store persists the token/user pair. Implementations must treat an absent
// value as ("", nil) or (nil, nil), not as an error.
type Store interface {
	GetToken() (string, error)
	SetToken(token string) error
	GetUser() (*User, error)
	SetUser(user *User) error
	// Clear removes both token and user. Clearing an empty store is a no-op.
	Clear() error
}
