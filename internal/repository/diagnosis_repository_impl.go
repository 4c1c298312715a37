package repository

import (
	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type diagnosisRepository struct{}

func NewDiagnosisRepository() domainRepo.DiagnosisRepository {
	return &diagnosisRepository{}
}

func (r *diagnosisRepository) Create(db *gorm.DB, diagnosis *entity.Diagnosis) error {
	return db.Create(diagnosis).Error
}

func (r *diagnosisRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) ([]entity.Diagnosis, error) {
	var diagnoses []entity.Diagnosis
	err := db.Preload("Doctor.User").Preload("Patient.User").
		Where("appointment_id = ?", appointmentID).
		Order("created_at DESC").
		Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *diagnosisRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Diagnosis, error) {
	var diagnoses []entity.Diagnosis
	err := db.Preload("Patient.User").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *diagnosisRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Diagnosis, error) {
	var diagnoses []entity.Diagnosis
	err := db.Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *diagnosisRepository) FindAll(db *gorm.DB) ([]entity.Diagnosis, error) {
	var diagnoses []entity.Diagnosis
	err := db.Preload("Doctor.User").Preload("Patient.User").
		Order("created_at DESC").
		Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *diagnosisRepository) UpdateScoped(db *gorm.DB, id, doctorID uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := db.Model(&entity.Diagnosis{}).
		Where("id = ? AND doctor_id = ?", id, doctorID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *diagnosisRepository) DeleteScoped(db *gorm.DB, id, doctorID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND doctor_id = ?", id, doctorID).Delete(&entity.Diagnosis{})
	return result.RowsAffected, result.Error
}
