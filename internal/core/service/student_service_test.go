package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/playschool-a2z/management-api/internal/core/domain"
	"github.com/playschool-a2z/management-api/internal/core/ports"
)

type stubStudentRepo struct {
	students map[string]*domain.Student
	nextID   int
}

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{students: make(map[string]*domain.Student)}
}

func cloneStudent(s *domain.Student) *domain.Student {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func (r *stubStudentRepo) Insert(_ context.Context, s *domain.Student) (*domain.Student, error) {
	copy := cloneStudent(s)
	r.nextID++
	copy.ID = fmt.Sprintf("student-%d", r.nextID)
	r.students[copy.ID] = copy
	return cloneStudent(copy), nil
}

func (r *stubStudentRepo) FindByID(_ context.Context, id string) (*domain.Student, error) {
	if s, ok := r.students[id]; ok {
		return cloneStudent(s), nil
	}
	return nil, domain.ErrStudentNotFound
}

func (r *stubStudentRepo) Update(_ context.Context, s *domain.Student) (*domain.Student, error) {
	if _, ok := r.students[s.ID]; !ok {
		return nil, domain.ErrStudentNotFound
	}
	r.students[s.ID] = cloneStudent(s)
	return cloneStudent(s), nil
}

func (r *stubStudentRepo) SetActive(_ context.Context, id string, active bool) (*domain.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	s.Active = active
	return cloneStudent(s), nil
}

func (r *stubStudentRepo) FindActive(_ context.Context) ([]*domain.Student, error) {
	var out []*domain.Student
	for _, s := range r.students {
		if s.Active {
			out = append(out, cloneStudent(s))
		}
	}
	return out, nil
}

func (r *stubStudentRepo) FindAll(_ context.Context) ([]*domain.Student, error) {
	var out []*domain.Student
	for _, s := range r.students {
		out = append(out, cloneStudent(s))
	}
	return out, nil
}

func (r *stubStudentRepo) SearchByName(_ context.Context, name string) ([]*domain.Student, error) {
	needle := strings.ToLower(name)
	var out []*domain.Student
	for _, s := range r.students {
		if strings.Contains(strings.ToLower(s.FirstName), needle) ||
			strings.Contains(strings.ToLower(s.LastName), needle) {
			out = append(out, cloneStudent(s))
		}
	}
	return out, nil
}

func (r *stubStudentRepo) FindByParentEmail(_ context.Context, email string) ([]*domain.Student, error) {
	var out []*domain.Student
	for _, s := range r.students {
		if strings.EqualFold(s.ParentEmail, email) {
			out = append(out, cloneStudent(s))
		}
	}
	return out, nil
}

func (r *stubStudentRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, s := range r.students {
		if s.Active {
			n++
		}
	}
	return n, nil
}

func validInput() ports.StudentInput {
	return ports.StudentInput{
		FirstName:   "Mia",
		LastName:    "Lopez",
		DateOfBirth: time.Now().UTC().AddDate(-3, 0, 0),
		ParentEmail: "parent@example.com",
	}
}

func newStudentService(repo ports.StudentRepository, audit ports.AuditTrail) *StudentService {
	return NewStudentService(repo, audit, zerolog.Nop())
}

func TestStudentService_Register_Defaults(t *testing.T) {
	repo := newStubStudentRepo()
	audit := &stubAudit{}
	svc := newStudentService(repo, audit)

	created, err := svc.Register(context.Background(), "admin1", validInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected an assigned ID")
	}
	if !created.Active {
		t.Fatalf("new records should start active")
	}
	if created.EnrollmentDate.IsZero() {
		t.Fatalf("enrollment date should default to today")
	}
	if audit.lastAction() != domain.AuditStudentRegistered {
		t.Fatalf("expected student_registered audit event, got %q", audit.lastAction())
	}
}

func TestStudentService_Register_KeepsGivenEnrollmentDate(t *testing.T) {
	svc := newStudentService(newStubStudentRepo(), &stubAudit{})

	input := validInput()
	input.EnrollmentDate = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	created, err := svc.Register(context.Background(), "admin1", input)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !created.EnrollmentDate.Equal(input.EnrollmentDate) {
		t.Fatalf("enrollment date = %v, want %v", created.EnrollmentDate, input.EnrollmentDate)
	}
}

func TestStudentService_Register_InvalidRejected(t *testing.T) {
	repo := newStubStudentRepo()
	svc := newStudentService(repo, &stubAudit{})

	input := validInput()
	input.DateOfBirth = time.Now().UTC().AddDate(-10, 0, 0)

	if _, err := svc.Register(context.Background(), "admin1", input); !errors.Is(err, domain.ErrInvalidStudent) {
		t.Fatalf("expected ErrInvalidStudent, got %v", err)
	}
	if len(repo.students) != 0 {
		t.Fatalf("invalid record must not be persisted")
	}
}

func TestStudentService_Update_PreservesStatusAndEnrollment(t *testing.T) {
	repo := newStubStudentRepo()
	svc := newStudentService(repo, &stubAudit{})

	input := validInput()
	input.EnrollmentDate = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	created, err := svc.Register(context.Background(), "admin1", input)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	update := validInput()
	update.FirstName = "Amelia"
	update.EnrollmentDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	updated, err := svc.Update(context.Background(), created.ID, update)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.FirstName != "Amelia" {
		t.Fatalf("first name not updated: %q", updated.FirstName)
	}
	if !updated.EnrollmentDate.Equal(created.EnrollmentDate) {
		t.Fatalf("update must not change enrollment date: got %v", updated.EnrollmentDate)
	}
	if !updated.Active {
		t.Fatalf("update must not change the active flag")
	}
}

func TestStudentService_Update_NotFound(t *testing.T) {
	svc := newStudentService(newStubStudentRepo(), &stubAudit{})
	if _, err := svc.Update(context.Background(), "missing", validInput()); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestStudentService_DeactivateReactivate(t *testing.T) {
	repo := newStubStudentRepo()
	audit := &stubAudit{}
	svc := newStudentService(repo, audit)

	created, err := svc.Register(context.Background(), "admin1", validInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.Deactivate(context.Background(), "admin1", created.ID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if audit.lastAction() != domain.AuditStudentDeactivated {
		t.Fatalf("expected student_deactivated audit event, got %q", audit.lastAction())
	}

	// Soft delete: the record is retained and still findable by ID.
	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get after deactivate: %v", err)
	}
	if got.Active {
		t.Fatalf("deactivated record should be inactive")
	}

	active, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("deactivated record must not appear in active list")
	}

	restored, err := svc.Reactivate(context.Background(), "admin1", created.ID)
	if err != nil {
		t.Fatalf("Reactivate: %v", err)
	}
	if !restored.Active {
		t.Fatalf("reactivated record should be active")
	}
	if audit.lastAction() != domain.AuditStudentReactivated {
		t.Fatalf("expected student_reactivated audit event, got %q", audit.lastAction())
	}
}

func TestStudentService_CountActive(t *testing.T) {
	repo := newStubStudentRepo()
	svc := newStudentService(repo, &stubAudit{})

	a, _ := svc.Register(context.Background(), "admin1", validInput())
	if _, err := svc.Register(context.Background(), "admin1", validInput()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	count, err := svc.CountActive(context.Background())
	if err != nil {
		t.Fatalf("CountActive: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	if err := svc.Deactivate(context.Background(), "admin1", a.ID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	count, err = svc.CountActive(context.Background())
	if err != nil {
		t.Fatalf("CountActive: %v", err)
	}
	if count != 1 {
		t.Fatalf("count after deactivation = %d, want 1", count)
	}
}

func TestStudentService_SearchByName(t *testing.T) {
	repo := newStubStudentRepo()
	svc := newStudentService(repo, &stubAudit{})

	first := validInput()
	second := validInput()
	second.FirstName = "Noah"
	second.LastName = "Miao"
	if _, err := svc.Register(context.Background(), "admin1", first); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "admin1", second); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Case-insensitive substring over first and last name.
	matches, err := svc.SearchByName(context.Background(), "mia")
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	matches, err = svc.SearchByName(context.Background(), "noah")
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(matches) != 1 || matches[0].FirstName != "Noah" {
		t.Fatalf("unexpected matches: %+v", matches)
	}
}
