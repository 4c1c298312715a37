package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpsertReviewRequest struct {
	DoctorID   string `json:"doctor_id" validate:"required,uuid"`
	Rating     int    `json:"rating" validate:"required"`
	ReviewText string `json:"review_text,omitempty"`
}

// Response DTOs

type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	Rating      int       `json:"rating"`
	ReviewText  string    `json:"review_text,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}
