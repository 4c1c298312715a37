package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *entity.Review) error {
	return db.Create(review).Error
}

func (r *reviewRepository) FindByDoctorAndPatient(db *gorm.DB, doctorID, patientID uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := db.Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Review, error) {
	var reviews []entity.Review
	err := db.Preload("Patient.User").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Update(db *gorm.DB, review *entity.Review) error {
	return db.Save(review).Error
}

// DeleteScoped removes a review only when it belongs to the given patient.
// The deleted row is returned so the caller knows which doctor's aggregates
// to recompute. Affected rows 0 means not found or not owned.
func (r *reviewRepository) DeleteScoped(db *gorm.DB, id uuid.UUID, patientID uuid.UUID) (*entity.Review, int64, error) {
	var review entity.Review
	err := db.Where("id = ? AND patient_id = ?", id, patientID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	result := db.Where("id = ? AND patient_id = ?", id, patientID).Delete(&entity.Review{})
	return &review, result.RowsAffected, result.Error
}

// AggregateByDoctor recomputes the average rating and review count over all
// of the doctor's reviews. An empty set yields 0/0.
func (r *reviewRepository) AggregateByDoctor(db *gorm.DB, doctorID uuid.UUID) (*domainRepo.RatingAggregate, error) {
	var row struct {
		Average float64
		Count   int64
	}
	err := db.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Where("doctor_id = ?", doctorID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &domainRepo.RatingAggregate{Average: row.Average, Count: row.Count}, nil
}
