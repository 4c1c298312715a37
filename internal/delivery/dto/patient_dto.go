package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdatePatientProfileRequest struct {
	BloodType             *string `json:"blood_type,omitempty"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"`
	MedicalHistory        *string `json:"medical_history,omitempty"`
	Allergies             *string `json:"allergies,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID                    uuid.UUID `json:"id"`
	UserID                uuid.UUID `json:"user_id"`
	FullName              string    `json:"full_name,omitempty"`
	Email                 string    `json:"email,omitempty"`
	BloodType             string    `json:"blood_type,omitempty"`
	DateOfBirth           string    `json:"date_of_birth,omitempty"`
	MedicalHistory        string    `json:"medical_history,omitempty"`
	Allergies             string    `json:"allergies,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
