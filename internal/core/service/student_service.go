package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/playschool-a2z/management-api/internal/core/domain"
	"github.com/playschool-a2z/management-api/internal/core/ports"
)

// StudentService implements student record management.
type StudentService struct {
	repo  ports.StudentRepository
	audit ports.AuditTrail
	log   zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, audit ports.AuditTrail, log zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, audit: audit, log: log}
}

// Register validates and persists a new student record. Enrollment date
// defaults to today when not provided, and new records start active.
func (s *StudentService) Register(ctx context.Context, actor string, input ports.StudentInput) (*domain.Student, error) {
	now := time.Now().UTC()

	student := studentFromInput(input)
	student.Active = true
	student.CreatedAt = now
	student.UpdatedAt = now
	if student.EnrollmentDate.IsZero() {
		student.EnrollmentDate = now
	}

	if err := student.Validate(now); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, student)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to register student")
		return nil, err
	}

	s.log.Info().Str("student_id", created.ID).Str("actor", actor).Msg("student registered")
	s.audit.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    domain.AuditStudentRegistered,
		Target:    created.ID,
		Timestamp: now,
	})
	return created, nil
}

func (s *StudentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces the writable fields of an existing record. The enrollment
// date and active flag are not touched by updates.
func (s *StudentService) Update(ctx context.Context, id string, input ports.StudentInput) (*domain.Student, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := studentFromInput(input)
	updated.ID = existing.ID
	updated.EnrollmentDate = existing.EnrollmentDate
	updated.Active = existing.Active
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = now

	if err := updated.Validate(now); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, updated)
}

// Deactivate soft-deletes a student record.
func (s *StudentService) Deactivate(ctx context.Context, actor, id string) error {
	if _, err := s.repo.SetActive(ctx, id, false); err != nil {
		return err
	}

	s.log.Info().Str("student_id", id).Str("actor", actor).Msg("student deactivated")
	s.audit.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    domain.AuditStudentDeactivated,
		Target:    id,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// Reactivate restores a previously deactivated record.
func (s *StudentService) Reactivate(ctx context.Context, actor, id string) (*domain.Student, error) {
	student, err := s.repo.SetActive(ctx, id, true)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("student_id", id).Str("actor", actor).Msg("student reactivated")
	s.audit.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    domain.AuditStudentReactivated,
		Target:    id,
		Timestamp: time.Now().UTC(),
	})
	return student, nil
}

func (s *StudentService) ListActive(ctx context.Context) ([]*domain.Student, error) {
	return s.repo.FindActive(ctx)
}

func (s *StudentService) SearchByName(ctx context.Context, name string) ([]*domain.Student, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *StudentService) FindByParentEmail(ctx context.Context, email string) ([]*domain.Student, error) {
	return s.repo.FindByParentEmail(ctx, email)
}

func (s *StudentService) CountActive(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}

func studentFromInput(input ports.StudentInput) *domain.Student {
	return &domain.Student{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		DateOfBirth:      input.DateOfBirth,
		Gender:           input.Gender,
		Address:          input.Address,
		ParentName:       input.ParentName,
		ParentPhone:      input.ParentPhone,
		ParentEmail:      input.ParentEmail,
		EmergencyContact: input.EmergencyContact,
		EmergencyPhone:   input.EmergencyPhone,
		MedicalInfo:      input.MedicalInfo,
		Allergies:        input.Allergies,
		EnrollmentDate:   input.EnrollmentDate,
	}
}
