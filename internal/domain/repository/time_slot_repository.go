package repository

import (
	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeSlotRepository interface {
	Create(db *gorm.DB, slot *entity.TimeSlot) error
	FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.TimeSlot, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.TimeSlot, error)
	Update(db *gorm.DB, slot *entity.TimeSlot) error
	DeleteScoped(db *gorm.DB, id int, doctorID uuid.UUID) (int64, error)
}
