package repository

import (
	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consultationNoteRepository struct{}

func NewConsultationNoteRepository() domainRepo.ConsultationNoteRepository {
	return &consultationNoteRepository{}
}

func (r *consultationNoteRepository) Create(db *gorm.DB, note *entity.ConsultationNote) error {
	return db.Create(note).Error
}

func (r *consultationNoteRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) ([]entity.ConsultationNote, error) {
	var notes []entity.ConsultationNote
	err := db.Preload("Doctor.User").Preload("Patient.User").
		Where("appointment_id = ?", appointmentID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *consultationNoteRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.ConsultationNote, error) {
	var notes []entity.ConsultationNote
	err := db.Preload("Patient.User").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *consultationNoteRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.ConsultationNote, error) {
	var notes []entity.ConsultationNote
	err := db.Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *consultationNoteRepository) FindAll(db *gorm.DB) ([]entity.ConsultationNote, error) {
	var notes []entity.ConsultationNote
	err := db.Preload("Doctor.User").Preload("Patient.User").
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *consultationNoteRepository) UpdateScoped(db *gorm.DB, id, doctorID uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := db.Model(&entity.ConsultationNote{}).
		Where("id = ? AND doctor_id = ?", id, doctorID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *consultationNoteRepository) DeleteScoped(db *gorm.DB, id, doctorID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND doctor_id = ?", id, doctorID).Delete(&entity.ConsultationNote{})
	return result.RowsAffected, result.Error
}
