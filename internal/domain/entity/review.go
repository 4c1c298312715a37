package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a patient's rating of a doctor.
// At most one review exists per (doctor_id, patient_id); a second
// submission updates the existing row in place.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_doctor_patient" json:"doctor_id"`
	PatientID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_doctor_patient" json:"patient_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	ReviewText string    `gorm:"type:text" json:"review_text,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)
