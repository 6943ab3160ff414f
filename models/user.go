// Package models file: models/user.go
package models

// ----------------------- user model -----------------------

// User is the account record the backend returns on login/registration.
// It is read-only on this side; the backend owns it.
type User struct {
	ID       ID     `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// HasRole reports whether the user carries the given role value.
func (u User) HasRole(role string) bool {
	return u.Role == role
}

// ----------------------- auth payloads -----------------------

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account-creation request body.
type Registration struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthPayload is the data payload of a successful login/registration:
// a bearer token plus the authenticated user.
type AuthPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}
