package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationNote represents clinical observations for an appointment.
// Vitals are stored as a semi-schemaless JSONB blob, serialized on write
// and deserialized on every read path, including list results.
type ConsultationNote struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID   uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`
	DoctorID        uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID       uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Vitals          JSON      `gorm:"type:jsonb" json:"vitals,omitempty"`
	Observations    string    `gorm:"type:text" json:"observations,omitempty"`
	Recommendations string    `gorm:"type:text" json:"recommendations,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Doctor      Doctor      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient     Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (ConsultationNote) TableName() string {
	return "consultation_notes"
}
