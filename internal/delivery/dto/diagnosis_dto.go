package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDiagnosisRequest struct {
	AppointmentID string `json:"appointment_id" validate:"required,uuid"`
	Diagnosis     string `json:"diagnosis" validate:"required"`
	ICDCode       string `json:"icd_code,omitempty" validate:"omitempty,max=20"`
	Severity      string `json:"severity,omitempty" validate:"omitempty,max=20"`
	Notes         string `json:"notes,omitempty"`
}

type UpdateDiagnosisRequest struct {
	Diagnosis *string `json:"diagnosis,omitempty"`
	ICDCode   *string `json:"icd_code,omitempty"`
	Severity  *string `json:"severity,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// Response DTOs

type DiagnosisResponse struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	PatientID     uuid.UUID `json:"patient_id"`
	DoctorName    string    `json:"doctor_name,omitempty"`
	PatientName   string    `json:"patient_name,omitempty"`
	Diagnosis     string    `json:"diagnosis"`
	ICDCode       string    `json:"icd_code,omitempty"`
	Severity      string    `json:"severity,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DiagnosisListResponse struct {
	Diagnoses []DiagnosisResponse `json:"diagnoses"`
	Total     int                 `json:"total"`
}
