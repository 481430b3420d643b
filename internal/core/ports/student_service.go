package ports

import (
	"context"
	"time"

	"github.com/playschool-a2z/management-api/internal/core/domain"
)

// StudentInput carries the writable fields of a student record, used both
// for registration and full updates.
type StudentInput struct {
	FirstName        string
	LastName         string
	DateOfBirth      time.Time
	Gender           string
	Address          string
	ParentName       string
	ParentPhone      string
	ParentEmail      string
	EmergencyContact string
	EmergencyPhone   string
	MedicalInfo      string
	Allergies        string
	EnrollmentDate   time.Time
}

// StudentService defines the student management use cases. Actor is the
// authenticated username performing the operation, recorded in the audit
// trail.
type StudentService interface {
	Register(ctx context.Context, actor string, input StudentInput) (*domain.Student, error)
	Get(ctx context.Context, id string) (*domain.Student, error)
	Update(ctx context.Context, id string, input StudentInput) (*domain.Student, error)
	Deactivate(ctx context.Context, actor, id string) error
	Reactivate(ctx context.Context, actor, id string) (*domain.Student, error)
	ListActive(ctx context.Context) ([]*domain.Student, error)
	SearchByName(ctx context.Context, name string) ([]*domain.Student, error)
	FindByParentEmail(ctx context.Context, email string) ([]*domain.Student, error)
	CountActive(ctx context.Context) (int64, error)
}
