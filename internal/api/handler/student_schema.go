package handler

// Dates cross the API boundary as calendar days, no time component.
const dateLayout = "2006-01-02"

type studentRequest struct {
	FirstName        string `json:"first_name"        validate:"required,max=50"`
	LastName         string `json:"last_name"         validate:"required,max=50"`
	DateOfBirth      string `json:"date_of_birth"     validate:"required,datetime=2006-01-02"`
	Gender           string `json:"gender"            validate:"omitempty,max=10"`
	Address          string `json:"address"           validate:"omitempty,max=200"`
	ParentName       string `json:"parent_name"       validate:"omitempty,max=100"`
	ParentPhone      string `json:"parent_phone"      validate:"omitempty,max=15"`
	ParentEmail      string `json:"parent_email"      validate:"omitempty,email,max=100"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=100"`
	EmergencyPhone   string `json:"emergency_phone"   validate:"omitempty,max=15"`
	MedicalInfo      string `json:"medical_info"      validate:"omitempty,max=500"`
	Allergies        string `json:"allergies"         validate:"omitempty,max=500"`
	EnrollmentDate   string `json:"enrollment_date"   validate:"omitempty,datetime=2006-01-02"`
}

type studentResponse struct {
	ID               string `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender,omitempty"`
	Address          string `json:"address,omitempty"`
	ParentName       string `json:"parent_name,omitempty"`
	ParentPhone      string `json:"parent_phone,omitempty"`
	ParentEmail      string `json:"parent_email,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	EmergencyPhone   string `json:"emergency_phone,omitempty"`
	MedicalInfo      string `json:"medical_info,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
	EnrollmentDate   string `json:"enrollment_date"`
	Active           bool   `json:"active"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type countResponse struct {
	Count int64 `json:"count"`
}
