package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Playschool enrollment is limited to this age band, in whole years.
const (
	MinStudentAge = 1
	MaxStudentAge = 6
)

var ErrInvalidStudent = errors.New("invalid student data")

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Student is an enrolled child's record. Deactivation is a soft delete: the
// record is retained with Active=false and can be reactivated later.
type Student struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	Gender           string    `json:"gender,omitempty"`
	Address          string    `json:"address,omitempty"`
	ParentName       string    `json:"parent_name,omitempty"`
	ParentPhone      string    `json:"parent_phone,omitempty"`
	ParentEmail      string    `json:"parent_email,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	EmergencyPhone   string    `json:"emergency_phone,omitempty"`
	MedicalInfo      string    `json:"medical_info,omitempty"`
	Allergies        string    `json:"allergies,omitempty"`
	EnrollmentDate   time.Time `json:"enrollment_date"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Validate checks the invariants a student record must satisfy before it is
// persisted. The age band is measured in calendar years at the given
// reference time.
func (s *Student) Validate(now time.Time) error {
	if strings.TrimSpace(s.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidStudent)
	}
	if strings.TrimSpace(s.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidStudent)
	}
	if s.DateOfBirth.IsZero() {
		return fmt.Errorf("%w: date of birth is required", ErrInvalidStudent)
	}
	if s.DateOfBirth.After(now) {
		return fmt.Errorf("%w: date of birth cannot be in the future", ErrInvalidStudent)
	}

	age := now.Year() - s.DateOfBirth.Year()
	if age < MinStudentAge || age > MaxStudentAge {
		return fmt.Errorf("%w: student age should be between %d-%d years",
			ErrInvalidStudent, MinStudentAge, MaxStudentAge)
	}

	if s.ParentEmail != "" && !emailPattern.MatchString(s.ParentEmail) {
		return fmt.Errorf("%w: invalid parent email format", ErrInvalidStudent)
	}
	return nil
}
