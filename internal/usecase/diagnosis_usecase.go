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
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDiagnosisNotFound = errors.New("diagnosis not found")

type DiagnosisUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateDiagnosisRequest) (*dto.DiagnosisResponse, error)
	List(ctx context.Context, userID uuid.UUID, roleID int) ([]dto.DiagnosisResponse, error)
	ListByAppointment(ctx context.Context, userID uuid.UUID, roleID int, appointmentID uuid.UUID) ([]dto.DiagnosisResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateDiagnosisRequest) error
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type diagnosisUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	diagnosisRepo    repository.DiagnosisRepository
	appointmentRepo  repository.AppointmentRepository
	provisionService *service.ProvisionService
	auditService     *service.AuditService
}

func NewDiagnosisUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	diagnosisRepo repository.DiagnosisRepository,
	appointmentRepo repository.AppointmentRepository,
	provisionService *service.ProvisionService,
	auditService *service.AuditService,
) DiagnosisUsecase {
	return &diagnosisUsecase{
		db:               db,
		log:              log,
		diagnosisRepo:    diagnosisRepo,
		appointmentRepo:  appointmentRepo,
		provisionService: provisionService,
		auditService:     auditService,
	}
}

func (u *diagnosisUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateDiagnosisRequest) (*dto.DiagnosisResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	appointmentID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != doctor.ID {
		return nil, ErrNotOwner
	}

	diagnosis := &entity.Diagnosis{
		AppointmentID: appointment.ID,
		DoctorID:      doctor.ID,
		PatientID:     appointment.PatientID,
		Diagnosis:     req.Diagnosis,
		ICDCode:       req.ICDCode,
		Severity:      req.Severity,
		Notes:         req.Notes,
	}

	if err := u.diagnosisRepo.Create(db, diagnosis); err != nil {
		u.log.Warnf("Failed to create diagnosis: %+v", err)
		return nil, err
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *diagnosisUsecase) List(ctx context.Context, userID uuid.UUID, roleID int) ([]dto.DiagnosisResponse, error) {
	db := u.db.WithContext(ctx)

	var diagnoses []entity.Diagnosis
	var err error

	switch roleID {
	case entity.RoleIDPatient:
		patient, perr := u.provisionService.EnsurePatient(ctx, db, userID)
		if perr != nil {
			return nil, perr
		}
		diagnoses, err = u.diagnosisRepo.FindByPatientID(db, patient.ID)
	case entity.RoleIDDoctor:
		doctor, derr := u.provisionService.EnsureDoctor(ctx, db, userID)
		if derr != nil {
			return nil, derr
		}
		diagnoses, err = u.diagnosisRepo.FindByDoctorID(db, doctor.ID)
	default:
		diagnoses, err = u.diagnosisRepo.FindAll(db)
	}

	if err != nil {
		u.log.Warnf("Failed to list diagnoses: %+v", err)
		return nil, err
	}

	return converter.DiagnosesToResponses(diagnoses), nil
}

func (u *diagnosisUsecase) ListByAppointment(ctx context.Context, userID uuid.UUID, roleID int, appointmentID uuid.UUID) ([]dto.DiagnosisResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	switch roleID {
	case entity.RoleIDPatient:
		patient, perr := u.provisionService.EnsurePatient(ctx, db, userID)
		if perr != nil {
			return nil, perr
		}
		if appointment.PatientID != patient.ID {
			return nil, ErrNotOwner
		}
	case entity.RoleIDDoctor:
		doctor, derr := u.provisionService.EnsureDoctor(ctx, db, userID)
		if derr != nil {
			return nil, derr
		}
		if appointment.DoctorID != doctor.ID {
			return nil, ErrNotOwner
		}
	}

	diagnoses, err := u.diagnosisRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to list diagnoses: %+v", err)
		return nil, err
	}

	return converter.DiagnosesToResponses(diagnoses), nil
}

func (u *diagnosisUsecase) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateDiagnosisRequest) error {
	db := u.db.WithContext(ctx)

	doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
	if err != nil {
		return err
	}

	fields, err := buildDiagnosisPatch(req)
	if err != nil {
		return err
	}

	rows, err := u.diagnosisRepo.UpdateScoped(db, id, doctor.ID, fields)
	if err != nil {
		u.log.Warnf("Failed to update diagnosis: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrDiagnosisNotFound
	}

	return nil
}

func (u *diagnosisUsecase) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
	if err != nil {
		return err
	}

	rows, err := u.diagnosisRepo.DeleteScoped(db, id, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to delete diagnosis: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrDiagnosisNotFound
	}

	return nil
}

func buildDiagnosisPatch(req *dto.UpdateDiagnosisRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if req.Diagnosis != nil {
		fields["diagnosis"] = *req.Diagnosis
	}
	if req.ICDCode != nil {
		fields["icd_code"] = *req.ICDCode
	}
	if req.Severity != nil {
		fields["severity"] = *req.Severity
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	return fields, nil
}
