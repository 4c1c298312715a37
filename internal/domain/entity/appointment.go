package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ValidAppointmentStatus reports whether s is one of the known statuses.
// Transitions between statuses are deliberately unrestricted.
func ValidAppointmentStatus(s string) bool {
	switch AppointmentStatus(s) {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents a booked consultation between a patient and a
// doctor. No two non-cancelled appointments may share
// (patient_id, doctor_id, appointment_date, appointment_time); the partial
// unique index idx_appointments_active_slot enforces this under concurrent
// creates, with the pre-insert check providing the friendly error.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index;index:idx_appointments_active_slot,unique,where:status <> 'cancelled'" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index;index:idx_appointments_active_slot,unique" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index;index:idx_appointments_active_slot,unique" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:time;not null;index:idx_appointments_active_slot,unique" json:"appointment_time"`
	ReasonForVisit  string            `gorm:"type:text" json:"reason_for_visit,omitempty"`
	Symptoms        string            `gorm:"type:text" json:"symptoms,omitempty"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
