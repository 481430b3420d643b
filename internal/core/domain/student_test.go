package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validStudent(now time.Time) *Student {
	return &Student{
		FirstName:   "Mia",
		LastName:    "Lopez",
		DateOfBirth: now.AddDate(-3, 0, 0),
		ParentEmail: "parent@example.com",
	}
}

func TestStudentValidate_OK(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	if err := validStudent(now).Validate(now); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestStudentValidate_RequiredFields(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	s := validStudent(now)
	s.FirstName = "   "
	if err := s.Validate(now); !errors.Is(err, ErrInvalidStudent) {
		t.Fatalf("expected ErrInvalidStudent for blank first name, got %v", err)
	}

	s = validStudent(now)
	s.LastName = ""
	if err := s.Validate(now); !errors.Is(err, ErrInvalidStudent) {
		t.Fatalf("expected ErrInvalidStudent for blank last name, got %v", err)
	}

	s = validStudent(now)
	s.DateOfBirth = time.Time{}
	if err := s.Validate(now); !errors.Is(err, ErrInvalidStudent) {
		t.Fatalf("expected ErrInvalidStudent for missing birth date, got %v", err)
	}
}

func TestStudentValidate_FutureBirthDate(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	s := validStudent(now)
	s.DateOfBirth = now.AddDate(0, 0, 1)
	err := s.Validate(now)
	if !errors.Is(err, ErrInvalidStudent) {
		t.Fatalf("expected ErrInvalidStudent, got %v", err)
	}
	if !strings.Contains(err.Error(), "future") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestStudentValidate_AgeBand(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		years int
		ok    bool
	}{
		{"too young", 0, false},
		{"lower bound", 1, true},
		{"upper bound", 6, true},
		{"too old", 7, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validStudent(now)
			s.DateOfBirth = now.AddDate(-tc.years, 0, 0)
			err := s.Validate(now)
			if tc.ok && err != nil {
				t.Fatalf("age %d: unexpected error: %v", tc.years, err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidStudent) {
				t.Fatalf("age %d: expected ErrInvalidStudent, got %v", tc.years, err)
			}
		})
	}
}

func TestStudentValidate_ParentEmail(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	s := validStudent(now)
	s.ParentEmail = "not-an-email"
	if err := s.Validate(now); !errors.Is(err, ErrInvalidStudent) {
		t.Fatalf("expected ErrInvalidStudent for bad email, got %v", err)
	}

	// Parent email is optional.
	s = validStudent(now)
	s.ParentEmail = ""
	if err := s.Validate(now); err != nil {
		t.Fatalf("empty email should pass, got %v", err)
	}
}
