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

var ErrPrescriptionNotFound = errors.New("prescription not found")

type PrescriptionUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	List(ctx context.Context, userID uuid.UUID, roleID int) ([]dto.PrescriptionResponse, error)
	ListByAppointment(ctx context.Context, userID uuid.UUID, roleID int, appointmentID uuid.UUID) ([]dto.PrescriptionResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdatePrescriptionRequest) error
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type prescriptionUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	prescriptionRepo    repository.PrescriptionRepository
	appointmentRepo     repository.AppointmentRepository
	patientRepo         repository.PatientRepository
	provisionService    *service.ProvisionService
	notificationService *service.NotificationService
	auditService        *service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	provisionService *service.ProvisionService,
	notificationService *service.NotificationService,
	auditService *service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:                  db,
		log:                 log,
		prescriptionRepo:    prescriptionRepo,
		appointmentRepo:     appointmentRepo,
		patientRepo:         patientRepo,
		provisionService:    provisionService,
		notificationService: notificationService,
		auditService:        auditService,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
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

	prescription := &entity.Prescription{
		AppointmentID: appointment.ID,
		DoctorID:      doctor.ID,
		PatientID:     appointment.PatientID,
		Medications:   req.Medications,
		Dosage:        req.Dosage,
		Instructions:  req.Instructions,
		DurationDays:  req.DurationDays,
		Notes:         req.Notes,
	}

	if err := u.prescriptionRepo.Create(db, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	if patient, perr := u.patientRepo.FindByID(db, appointment.PatientID); perr == nil && patient != nil {
		u.notificationService.Notify(patient.UserID, "New Prescription",
			"Your doctor has issued a new prescription",
			entity.NotificationTypePrescription)
	}

	u.auditService.Record(&userID, entity.AuditActionPrescriptionCreate, entity.JSON{
		"prescription_id": prescription.ID.String(),
		"appointment_id":  appointment.ID.String(),
	})

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) List(ctx context.Context, userID uuid.UUID, roleID int) ([]dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)

	var prescriptions []entity.Prescription
	var err error

	switch roleID {
	case entity.RoleIDPatient:
		patient, perr := u.provisionService.EnsurePatient(ctx, db, userID)
		if perr != nil {
			return nil, perr
		}
		prescriptions, err = u.prescriptionRepo.FindByPatientID(db, patient.ID)
	case entity.RoleIDDoctor:
		doctor, derr := u.provisionService.EnsureDoctor(ctx, db, userID)
		if derr != nil {
			return nil, derr
		}
		prescriptions, err = u.prescriptionRepo.FindByDoctorID(db, doctor.ID)
	default:
		prescriptions, err = u.prescriptionRepo.FindAll(db)
	}

	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) ListByAppointment(ctx context.Context, userID uuid.UUID, roleID int, appointmentID uuid.UUID) ([]dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.checkAppointmentAccess(ctx, userID, roleID, appointmentID); err != nil {
		return nil, err
	}

	prescriptions, err := u.prescriptionRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdatePrescriptionRequest) error {
	db := u.db.WithContext(ctx)

	doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
	if err != nil {
		return err
	}

	fields, err := buildPrescriptionPatch(req)
	if err != nil {
		return err
	}

	rows, err := u.prescriptionRepo.UpdateScoped(db, id, doctor.ID, fields)
	if err != nil {
		u.log.Warnf("Failed to update prescription: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrPrescriptionNotFound
	}

	return nil
}

func (u *prescriptionUsecase) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
	if err != nil {
		return err
	}

	rows, err := u.prescriptionRepo.DeleteScoped(db, id, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to delete prescription: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrPrescriptionNotFound
	}

	return nil
}

// checkAppointmentAccess verifies the caller may read records attached to the
// appointment: the owning patient, the owning doctor, or an admin.
func (u *prescriptionUsecase) checkAppointmentAccess(ctx context.Context, userID uuid.UUID, roleID int, appointmentID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	switch roleID {
	case entity.RoleIDPatient:
		patient, err := u.provisionService.EnsurePatient(ctx, db, userID)
		if err != nil {
			return err
		}
		if appointment.PatientID != patient.ID {
			return ErrNotOwner
		}
	case entity.RoleIDDoctor:
		doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
		if err != nil {
			return err
		}
		if appointment.DoctorID != doctor.ID {
			return ErrNotOwner
		}
	}

	return nil
}

func buildPrescriptionPatch(req *dto.UpdatePrescriptionRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if req.Medications != nil {
		fields["medications"] = *req.Medications
	}
	if req.Dosage != nil {
		fields["dosage"] = *req.Dosage
	}
	if req.Instructions != nil {
		fields["instructions"] = *req.Instructions
	}
	if req.DurationDays != nil {
		fields["duration_days"] = *req.DurationDays
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	return fields, nil
}
