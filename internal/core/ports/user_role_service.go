package ports

import (
	"context"

	"github.com/playschool-a2z/management-api/internal/core/domain"
)

// UserRoleService defines admin-initiated role administration. Role names
// are resolved case-insensitively via domain.ParseRole; unknown names fail
// with domain.ErrRoleNotFound.
type UserRoleService interface {
	Grant(ctx context.Context, actor, userID, roleName string) (*domain.User, error)
	// Revoke refuses to remove a user's last role (domain.ErrLastRole).
	Revoke(ctx context.Context, actor, userID, roleName string) (*domain.User, error)
	Roles(ctx context.Context, userID string) ([]domain.Role, error)
	UsersWithRole(ctx context.Context, roleName string) ([]*domain.User, error)
}
