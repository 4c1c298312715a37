package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTimeSlotNotFound = errors.New("time slot not found")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)

type TimeSlotUsecase interface {
	Upsert(ctx context.Context, userID uuid.UUID, req *dto.UpsertTimeSlotRequest) (*dto.TimeSlotResponse, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.TimeSlotResponse, error)
	ListOwn(ctx context.Context, userID uuid.UUID) ([]dto.TimeSlotResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id int) error
}

type timeSlotUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	timeSlotRepo     repository.TimeSlotRepository
	doctorRepo       repository.DoctorRepository
	provisionService *service.ProvisionService
}

func NewTimeSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	timeSlotRepo repository.TimeSlotRepository,
	doctorRepo repository.DoctorRepository,
	provisionService *service.ProvisionService,
) TimeSlotUsecase {
	return &timeSlotUsecase{
		db:               db,
		log:              log,
		timeSlotRepo:     timeSlotRepo,
		doctorRepo:       doctorRepo,
		provisionService: provisionService,
	}
}

// Upsert writes the caller's availability for one weekday. A row already
// covering that weekday is updated in place rather than duplicated.
func (u *timeSlotUsecase) Upsert(ctx context.Context, userID uuid.UUID, req *dto.UpsertTimeSlotRequest) (*dto.TimeSlotResponse, error) {
	db := u.db.WithContext(ctx)

	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	end, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	slot, err := u.timeSlotRepo.FindByDoctorAndDay(db, doctor.ID, req.DayOfWeek)
	if err != nil {
		u.log.Warnf("Failed to find time slot: %+v", err)
		return nil, err
	}

	if slot == nil {
		slot = &entity.TimeSlot{
			DoctorID:    doctor.ID,
			DayOfWeek:   req.DayOfWeek,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			IsAvailable: available,
		}
		err = u.timeSlotRepo.Create(db, slot)
		if err == nil {
			return converter.TimeSlotToResponse(slot), nil
		}
		if !service.IsDuplicateKeyError(err, "idx_time_slots_doctor_day") {
			u.log.Warnf("Failed to create time slot: %+v", err)
			return nil, err
		}
		slot, err = u.timeSlotRepo.FindByDoctorAndDay(db, doctor.ID, req.DayOfWeek)
		if err != nil || slot == nil {
			u.log.Warnf("Failed to re-read time slot after duplicate insert: %+v", err)
			return nil, ErrTimeSlotNotFound
		}
	}

	slot.StartTime = req.StartTime
	slot.EndTime = req.EndTime
	slot.IsAvailable = available
	if err := u.timeSlotRepo.Update(db, slot); err != nil {
		u.log.Warnf("Failed to update time slot: %+v", err)
		return nil, err
	}

	return converter.TimeSlotToResponse(slot), nil
}

func (u *timeSlotUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.TimeSlotResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	slots, err := u.timeSlotRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list time slots: %+v", err)
		return nil, err
	}

	return converter.TimeSlotsToResponses(slots), nil
}

func (u *timeSlotUsecase) ListOwn(ctx context.Context, userID uuid.UUID) ([]dto.TimeSlotResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	slots, err := u.timeSlotRepo.FindByDoctorID(db, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to list time slots: %+v", err)
		return nil, err
	}

	return converter.TimeSlotsToResponses(slots), nil
}

func (u *timeSlotUsecase) Delete(ctx context.Context, userID uuid.UUID, id int) error {
	db := u.db.WithContext(ctx)

	doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
	if err != nil {
		return err
	}

	rows, err := u.timeSlotRepo.DeleteScoped(db, id, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to delete time slot: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrTimeSlotNotFound
	}

	return nil
}
