package repository

import (
	"time"

	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindActiveSlot(db *gorm.DB, patientID, doctorID uuid.UUID, date time.Time, timeOfDay string) (*entity.Appointment, error)
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) (int64, error)
	Cancel(db *gorm.DB, id uuid.UUID) (int64, error)
}
