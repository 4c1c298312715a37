package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidConsultationFee    = errors.New("invalid consultation fee")
	ErrInvalidAvailabilityStatus = errors.New("invalid availability status")
)

type DoctorUsecase interface {
	List(ctx context.Context) ([]dto.DoctorResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	GetOwnProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error)
	UpdateOwnProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorRepository
	provisionService *service.ProvisionService
	auditService     *service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	provisionService *service.ProvisionService,
	auditService *service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		provisionService: provisionService,
		auditService:     auditService,
	}
}

func (u *doctorUsecase) List(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.provisionService.EnsureDoctor(ctx, u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateOwnProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	if err := applyDoctorProfilePatch(doctor, req); err != nil {
		return nil, err
	}

	if err := u.doctorRepo.Update(db, doctor); err != nil {
		if service.IsDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	u.auditService.Record(&userID, entity.AuditActionProfileUpdate, entity.JSON{
		"doctor_id": doctor.ID.String(),
	})

	return converter.DoctorToResponse(doctor), nil
}

func applyDoctorProfilePatch(doctor *entity.Doctor, req *dto.UpdateDoctorProfileRequest) error {
	touched := false

	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
		touched = true
	}
	if req.LicenseNumber != nil {
		doctor.LicenseNumber = *req.LicenseNumber
		touched = true
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
		touched = true
	}
	if req.ConsultationFee != nil {
		fee, err := decimal.NewFromString(*req.ConsultationFee)
		if err != nil {
			return ErrInvalidConsultationFee
		}
		doctor.ConsultationFee = fee
		touched = true
	}
	if req.AvailabilityStatus != nil {
		switch *req.AvailabilityStatus {
		case entity.DoctorAvailable, entity.DoctorUnavailable:
			doctor.AvailabilityStatus = *req.AvailabilityStatus
		default:
			return ErrInvalidAvailabilityStatus
		}
		touched = true
	}

	if !touched {
		return ErrNoFieldsToUpdate
	}

	return nil
}
