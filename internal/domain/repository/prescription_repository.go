package repository

import (
	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) ([]entity.Prescription, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Prescription, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Prescription, error)
	FindAll(db *gorm.DB) ([]entity.Prescription, error)
	UpdateScoped(db *gorm.DB, id, doctorID uuid.UUID, fields map[string]interface{}) (int64, error)
	DeleteScoped(db *gorm.DB, id, doctorID uuid.UUID) (int64, error)
}
