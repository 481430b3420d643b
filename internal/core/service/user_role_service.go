package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/playschool-a2z/management-api/internal/core/domain"
	"github.com/playschool-a2z/management-api/internal/core/ports"
)

// UserRoleService implements admin-initiated role grants and revocations.
// Because the request authenticator rebuilds the principal's role set from
// the store on every request, changes here apply from the very next request
// even for tokens issued before the change.
type UserRoleService struct {
	users ports.UserRepository
	audit ports.AuditTrail
	log   zerolog.Logger
}

func NewUserRoleService(users ports.UserRepository, audit ports.AuditTrail, log zerolog.Logger) *UserRoleService {
	return &UserRoleService{users: users, audit: audit, log: log}
}

// Grant adds a role to the user. Granting a role the user already holds is
// a no-op at the store level.
func (s *UserRoleService) Grant(ctx context.Context, actor, userID, roleName string) (*domain.User, error) {
	role, ok := domain.ParseRole(roleName)
	if !ok {
		return nil, domain.ErrRoleNotFound
	}

	user, err := s.users.AddRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("role", role.ShortName()).Str("actor", actor).Msg("role granted")
	s.audit.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    domain.AuditRoleGranted,
		Target:    user.Username,
		Detail:    role.ShortName(),
		Timestamp: time.Now().UTC(),
	})
	return user, nil
}

// Revoke removes a role from the user. Every user must hold at least one
// role at all times, so revoking the last one fails with ErrLastRole.
func (s *UserRoleService) Revoke(ctx context.Context, actor, userID, roleName string) (*domain.User, error) {
	role, ok := domain.ParseRole(roleName)
	if !ok {
		return nil, domain.ErrRoleNotFound
	}

	current, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(current.Roles) <= 1 && current.HasRole(role) {
		return nil, domain.ErrLastRole
	}

	user, err := s.users.RemoveRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("role", role.ShortName()).Str("actor", actor).Msg("role revoked")
	s.audit.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    domain.AuditRoleRevoked,
		Target:    user.Username,
		Detail:    role.ShortName(),
		Timestamp: time.Now().UTC(),
	})
	return user, nil
}

func (s *UserRoleService) Roles(ctx context.Context, userID string) ([]domain.Role, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Roles, nil
}

func (s *UserRoleService) UsersWithRole(ctx context.Context, roleName string) ([]*domain.User, error) {
	role, ok := domain.ParseRole(roleName)
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return s.users.FindByRole(ctx, role)
}
