package ports

import (
	"context"
	"time"

	"github.com/playschool-a2z/management-api/internal/core/domain"
)

// SignupInput carries the data for account registration. Role is the
// requested role name ("admin", "teacher", "staff", "parent"); empty or
// unrecognised values fall back to the default parent role.
type SignupInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      string
}

// SigninResult is returned on successful authentication.
type SigninResult struct {
	Token string
	User  *domain.User
}

// AuthService defines the credential issuance and verification use cases.
type AuthService interface {
	// Signup registers a new account with exactly one role.
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Signin verifies credentials and mints a bearer token. Unknown
	// usernames and wrong passwords fail identically with
	// domain.ErrInvalidCredentials.
	Signin(ctx context.Context, username, password string) (*SigninResult, error)
	// Signout revokes the presented token for the rest of its lifetime.
	Signout(ctx context.Context, username, tokenID string, remaining time.Duration) error
	// CurrentUser returns the live account for an authenticated principal.
	CurrentUser(ctx context.Context, username string) (*domain.User, error)
}
