package entity

import (
	"time"

	"github.com/google/uuid"
)

// Diagnosis represents a clinical diagnosis recorded for an appointment
type Diagnosis struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`
	DoctorID      uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID     uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Diagnosis     string    `gorm:"type:text;not null" json:"diagnosis"`
	ICDCode       string    `gorm:"column:icd_code;type:varchar(20)" json:"icd_code,omitempty"`
	Severity      string    `gorm:"type:varchar(20)" json:"severity,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Doctor      Doctor      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient     Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}
