package ports

import (
	"context"

	"github.com/playschool-a2z/management-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts and their
// role assignments.
//
// Insert must enforce username and email uniqueness at the store (unique
// indexes), so that of two concurrent signups for the same name at most one
// succeeds; callers cannot rely on a prior existence check alone.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// AddRole and RemoveRole mutate the role set atomically and return the
	// updated user.
	AddRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error)
	RemoveRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
}
