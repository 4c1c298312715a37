package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type UpdateDoctorProfileRequest struct {
	Specialization     *string `json:"specialization,omitempty"`
	LicenseNumber      *string `json:"license_number,omitempty"`
	ExperienceYears    *int    `json:"experience_years,omitempty"`
	ConsultationFee    *string `json:"consultation_fee,omitempty"`
	AvailabilityStatus *string `json:"availability_status,omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	FullName           string          `json:"full_name,omitempty"`
	Email              string          `json:"email,omitempty"`
	Specialization     string          `json:"specialization"`
	LicenseNumber      string          `json:"license_number"`
	ExperienceYears    int             `json:"experience_years"`
	ConsultationFee    decimal.Decimal `json:"consultation_fee"`
	Rating             float64         `json:"rating"`
	TotalReviews       int             `json:"total_reviews"`
	AvailabilityStatus string          `json:"availability_status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
