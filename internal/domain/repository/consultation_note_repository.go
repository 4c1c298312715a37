package repository

import (
	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationNoteRepository interface {
	Create(db *gorm.DB, note *entity.ConsultationNote) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) ([]entity.ConsultationNote, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.ConsultationNote, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.ConsultationNote, error)
	FindAll(db *gorm.DB) ([]entity.ConsultationNote, error)
	UpdateScoped(db *gorm.DB, id, doctorID uuid.UUID, fields map[string]interface{}) (int64, error)
	DeleteScoped(db *gorm.DB, id, doctorID uuid.UUID) (int64, error)
}
