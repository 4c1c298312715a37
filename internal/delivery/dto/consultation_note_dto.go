package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateConsultationNoteRequest struct {
	AppointmentID   string                 `json:"appointment_id" validate:"required,uuid"`
	Vitals          map[string]interface{} `json:"vitals,omitempty"`
	Observations    string                 `json:"observations,omitempty"`
	Recommendations string                 `json:"recommendations,omitempty"`
}

type UpdateConsultationNoteRequest struct {
	Vitals          map[string]interface{} `json:"vitals,omitempty"`
	Observations    *string                `json:"observations,omitempty"`
	Recommendations *string                `json:"recommendations,omitempty"`
}

// Response DTOs

type ConsultationNoteResponse struct {
	ID              uuid.UUID              `json:"id"`
	AppointmentID   uuid.UUID              `json:"appointment_id"`
	DoctorID        uuid.UUID              `json:"doctor_id"`
	PatientID       uuid.UUID              `json:"patient_id"`
	DoctorName      string                 `json:"doctor_name,omitempty"`
	PatientName     string                 `json:"patient_name,omitempty"`
	Vitals          map[string]interface{} `json:"vitals,omitempty"`
	Observations    string                 `json:"observations,omitempty"`
	Recommendations string                 `json:"recommendations,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type ConsultationNoteListResponse struct {
	Notes []ConsultationNoteResponse `json:"notes"`
	Total int                        `json:"total"`
}
