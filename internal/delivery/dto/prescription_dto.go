package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePrescriptionRequest struct {
	AppointmentID string `json:"appointment_id" validate:"required,uuid"`
	Medications   string `json:"medications" validate:"required"`
	Dosage        string `json:"dosage,omitempty"`
	Instructions  string `json:"instructions,omitempty"`
	DurationDays  int    `json:"duration_days,omitempty" validate:"gte=0"`
	Notes         string `json:"notes,omitempty"`
}

type UpdatePrescriptionRequest struct {
	Medications  *string `json:"medications,omitempty"`
	Dosage       *string `json:"dosage,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
	DurationDays *int    `json:"duration_days,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	PatientID     uuid.UUID `json:"patient_id"`
	DoctorName    string    `json:"doctor_name,omitempty"`
	PatientName   string    `json:"patient_name,omitempty"`
	Medications   string    `json:"medications"`
	Dosage        string    `json:"dosage,omitempty"`
	Instructions  string    `json:"instructions,omitempty"`
	DurationDays  int       `json:"duration_days,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
