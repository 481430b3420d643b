package handler

import (
	"time"

	"github.com/playschool-a2z/management-api/internal/core/domain"
	"github.com/playschool-a2z/management-api/internal/core/ports"
)

// toStudentInput maps the HTTP request to the service DTO. Date strings have
// already passed datetime validation, so parse errors cannot occur here.
func toStudentInput(req studentRequest) ports.StudentInput {
	dob, _ := time.Parse(dateLayout, req.DateOfBirth)

	var enrollment time.Time
	if req.EnrollmentDate != "" {
		enrollment, _ = time.Parse(dateLayout, req.EnrollmentDate)
	}

	return ports.StudentInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DateOfBirth:      dob,
		Gender:           req.Gender,
		Address:          req.Address,
		ParentName:       req.ParentName,
		ParentPhone:      req.ParentPhone,
		ParentEmail:      req.ParentEmail,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		MedicalInfo:      req.MedicalInfo,
		Allergies:        req.Allergies,
		EnrollmentDate:   enrollment,
	}
}

func toStudentResponse(s *domain.Student) studentResponse {
	return studentResponse{
		ID:               s.ID,
		FirstName:        s.FirstName,
		LastName:         s.LastName,
		DateOfBirth:      s.DateOfBirth.Format(dateLayout),
		Gender:           s.Gender,
		Address:          s.Address,
		ParentName:       s.ParentName,
		ParentPhone:      s.ParentPhone,
		ParentEmail:      s.ParentEmail,
		EmergencyContact: s.EmergencyContact,
		EmergencyPhone:   s.EmergencyPhone,
		MedicalInfo:      s.MedicalInfo,
		Allergies:        s.Allergies,
		EnrollmentDate:   s.EnrollmentDate.Format(dateLayout),
		Active:           s.Active,
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        s.UpdatedAt.Format(time.RFC3339),
	}
}

func toStudentResponses(students []*domain.Student) []studentResponse {
	out := make([]studentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, toStudentResponse(s))
	}
	return out
}
