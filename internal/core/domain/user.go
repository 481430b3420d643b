package domain

import "time"

// User models a registered account: a parent, teacher, staff member, or
// administrator of the playschool.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user currently holds the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Principal is the per-request authenticated identity derived from a
// validated token plus a live user lookup. It is built by the request
// authenticator and consumed by the authorization check; it is never
// persisted or shared across requests.
type Principal struct {
	UserID   string
	Username string
	Roles    []Role
}
