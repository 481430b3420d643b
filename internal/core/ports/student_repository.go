package ports

import (
	"context"

	"github.com/playschool-a2z/management-api/internal/core/domain"
)

// StudentRepository defines persistence operations for student records.
type StudentRepository interface {
	Insert(ctx context.Context, s *domain.Student) (*domain.Student, error)
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	Update(ctx context.Context, s *domain.Student) (*domain.Student, error)

	// SetActive flips the soft-delete flag and returns the updated record.
	SetActive(ctx context.Context, id string, active bool) (*domain.Student, error)

	FindActive(ctx context.Context) ([]*domain.Student, error)
	FindAll(ctx context.Context) ([]*domain.Student, error)

	// SearchByName matches first or last name, case-insensitive substring.
	SearchByName(ctx context.Context, name string) ([]*domain.Student, error)
	FindByParentEmail(ctx context.Context, email string) ([]*domain.Student, error)
	CountActive(ctx context.Context) (int64, error)
}
