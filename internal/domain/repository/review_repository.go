package repository

import (
	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingAggregate holds the recomputed review statistics for a doctor
type RatingAggregate struct {
	Average float64
	Count   int64
}

type ReviewRepository interface {
	Create(db *gorm.DB, review *entity.Review) error
	FindByDoctorAndPatient(db *gorm.DB, doctorID, patientID uuid.UUID) (*entity.Review, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Review, error)
	Update(db *gorm.DB, review *entity.Review) error
	DeleteScoped(db *gorm.DB, id uuid.UUID, patientID uuid.UUID) (*entity.Review, int64, error)
	AggregateByDoctor(db *gorm.DB, doctorID uuid.UUID) (*RatingAggregate, error)
}
