package usecase

import (
	"context"
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

type PatientUsecase interface {
	GetOwnProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error)
	UpdateOwnProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	provisionService *service.ProvisionService
	auditService     *service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	provisionService *service.ProvisionService,
	auditService *service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		provisionService: provisionService,
		auditService:     auditService,
	}
}

func (u *patientUsecase) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.provisionService.EnsurePatient(ctx, u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdateOwnProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.provisionService.EnsurePatient(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	if err := applyPatientProfilePatch(patient, req); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Update(db, patient); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	u.auditService.Record(&userID, entity.AuditActionProfileUpdate, entity.JSON{
		"patient_id": patient.ID.String(),
	})

	return converter.PatientToResponse(patient), nil
}

func applyPatientProfilePatch(patient *entity.Patient, req *dto.UpdatePatientProfileRequest) error {
	touched := false

	if req.BloodType != nil {
		patient.BloodType = *req.BloodType
		touched = true
	}
	if req.DateOfBirth != nil {
		parsed, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return ErrInvalidDateFormat
		}
		patient.DateOfBirth = &parsed
		touched = true
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = *req.MedicalHistory
		touched = true
	}
	if req.Allergies != nil {
		patient.Allergies = *req.Allergies
		touched = true
	}
	if req.EmergencyContactName != nil {
		patient.EmergencyContactName = *req.EmergencyContactName
		touched = true
	}
	if req.EmergencyContactPhone != nil {
		patient.EmergencyContactPhone = *req.EmergencyContactPhone
		touched = true
	}

	if !touched {
		return ErrNoFieldsToUpdate
	}

	return nil
}
