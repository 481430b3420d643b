package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/playschool-a2z/management-api/internal/core/auth"
	"github.com/playschool-a2z/management-api/internal/core/domain"
	"github.com/playschool-a2z/management-api/internal/core/ports"
)

// AuthService implements signup, signin, and signout.
type AuthService struct {
	users    ports.UserRepository
	tokens   *auth.TokenService
	denylist ports.TokenDenylist
	audit    ports.AuditTrail
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens *auth.TokenService,
	denylist ports.TokenDenylist,
	audit ports.AuditTrail,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, tokens: tokens, denylist: denylist, audit: audit, log: log}
}

// Signup registers a new account. Username is checked before email, and an
// unrecognised role name silently falls back to the default parent role
// (documented policy). The store's unique indexes are the final arbiter for
// concurrent signups racing on the same username or email.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := domain.DefaultRole
	if input.Role != "" {
		if parsed, ok := domain.ParseRole(input.Role); ok {
			role = parsed
		}
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Roles:        []domain.Role{role},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", role.ShortName()).Msg("user registered")
	s.audit.Record(domain.AuditEvent{
		Actor:     created.Username,
		Action:    domain.AuditSignup,
		Detail:    role.ShortName(),
		Timestamp: now,
	})
	return created, nil
}

// Signin verifies credentials and mints a token. An unknown username and a
// wrong password are indistinguishable to the caller: both return
// domain.ErrInvalidCredentials, so usernames cannot be enumerated.
func (s *AuthService) Signin(ctx context.Context, username, password string) (*ports.SigninResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordSigninFailure(username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.recordSigninFailure(username)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("signin")
	s.audit.Record(domain.AuditEvent{
		Actor:     user.Username,
		Action:    domain.AuditSignin,
		Timestamp: time.Now().UTC(),
	})
	return &ports.SigninResult{Token: token, User: user}, nil
}

// Signout denylists the presented token for its remaining lifetime. An
// already-expired token is a no-op.
func (s *AuthService) Signout(ctx context.Context, username, tokenID string, remaining time.Duration) error {
	if tokenID != "" && remaining > 0 {
		if err := s.denylist.Revoke(ctx, tokenID, remaining); err != nil {
			return err
		}
	}

	s.audit.Record(domain.AuditEvent{
		Actor:     username,
		Action:    domain.AuditSignout,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// CurrentUser returns the live account behind an authenticated principal.
func (s *AuthService) CurrentUser(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *AuthService) recordSigninFailure(username string) {
	s.log.Warn().Str("username", username).Msg("signin failed")
	s.audit.Record(domain.AuditEvent{
		Actor:     username,
		Action:    domain.AuditSigninFailed,
		Timestamp: time.Now().UTC(),
	})
}
