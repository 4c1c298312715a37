package repository

import (
	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiagnosisRepository interface {
	Create(db *gorm.DB, diagnosis *entity.Diagnosis) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) ([]entity.Diagnosis, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Diagnosis, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Diagnosis, error)
	FindAll(db *gorm.DB) ([]entity.Diagnosis, error)
	UpdateScoped(db *gorm.DB, id, doctorID uuid.UUID, fields map[string]interface{}) (int64, error)
	DeleteScoped(db *gorm.DB, id, doctorID uuid.UUID) (int64, error)
}
