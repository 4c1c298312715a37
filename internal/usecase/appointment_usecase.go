package usecase

import (
	"context"
	"errors"
	"fmt"
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
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrDuplicateAppointment = errors.New("an active appointment already exists for this slot")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
	ErrInvalidStatus        = errors.New("invalid appointment status")
	ErrInvalidTimeFormat    = errors.New("invalid time format, use HH:MM")
	ErrNotOwner             = errors.New("you don't have access to this resource")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, userID uuid.UUID, roleID int) ([]dto.AppointmentResponse, error)
	Get(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID) error
}

type appointmentUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	doctorRepo          repository.DoctorRepository
	provisionService    *service.ProvisionService
	notificationService *service.NotificationService
	auditService        *service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	provisionService *service.ProvisionService,
	notificationService *service.NotificationService,
	auditService *service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                  db,
		log:                 log,
		appointmentRepo:     appointmentRepo,
		doctorRepo:          doctorRepo,
		provisionService:    provisionService,
		notificationService: notificationService,
		auditService:        auditService,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.AppointmentTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.provisionService.EnsurePatient(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	existing, err := u.appointmentRepo.FindActiveSlot(db, patient.ID, doctor.ID, appointmentDate, req.AppointmentTime)
	if err != nil {
		u.log.Warnf("Failed to check existing appointments: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateAppointment
	}

	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: appointmentDate,
		AppointmentTime: req.AppointmentTime,
		ReasonForVisit:  req.ReasonForVisit,
		Symptoms:        req.Symptoms,
		Status:          entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		// The partial unique index catches creates that raced past the
		// pre-insert check.
		if service.IsDuplicateKeyError(err, "idx_appointments_active_slot") {
			return nil, ErrDuplicateAppointment
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	slot := fmt.Sprintf("%s %s", req.AppointmentDate, req.AppointmentTime)
	u.notificationService.Notify(userID, "Appointment Booked",
		fmt.Sprintf("Your appointment on %s has been scheduled", slot),
		entity.NotificationTypeAppointment)
	u.notificationService.Notify(doctor.UserID, "New Appointment",
		fmt.Sprintf("A new appointment has been booked for %s", slot),
		entity.NotificationTypeAppointment)

	u.auditService.Record(&userID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"doctor_id":      doctor.ID.String(),
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, userID uuid.UUID, roleID int) ([]dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	var appointments []entity.Appointment
	var err error

	switch roleID {
	case entity.RoleIDPatient:
		patient, perr := u.provisionService.EnsurePatient(ctx, db, userID)
		if perr != nil {
			return nil, perr
		}
		appointments, err = u.appointmentRepo.FindByPatientID(db, patient.ID)
	case entity.RoleIDDoctor:
		doctor, derr := u.provisionService.EnsureDoctor(ctx, db, userID)
		if derr != nil {
			return nil, derr
		}
		appointments, err = u.appointmentRepo.FindByDoctorID(db, doctor.ID)
	default:
		appointments, err = u.appointmentRepo.FindAll(db)
	}

	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findOwned(ctx, userID, roleID, id)
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	if _, err := u.findOwned(ctx, userID, roleID, id); err != nil {
		return nil, err
	}

	fields, err := buildAppointmentPatch(req)
	if err != nil {
		return nil, err
	}

	rows, err := u.appointmentRepo.UpdateFields(db, id, fields)
	if err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotFound
	}

	u.auditService.Record(&userID, entity.AuditActionAppointmentUpdate, entity.JSON{
		"appointment_id": id.String(),
	})

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.findOwned(ctx, userID, roleID, id)
	if err != nil {
		return err
	}

	rows, err := u.appointmentRepo.Cancel(db, id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.Record(&userID, entity.AuditActionAppointmentCancel, entity.JSON{
		"appointment_id": id.String(),
	})

	doctor, err := u.doctorRepo.FindByID(db, appointment.DoctorID)
	if err == nil && doctor != nil {
		u.notificationService.Notify(doctor.UserID, "Appointment Cancelled",
			fmt.Sprintf("The appointment on %s %s has been cancelled",
				appointment.AppointmentDate.Format("2006-01-02"), appointment.AppointmentTime),
			entity.NotificationTypeAppointment)
	}

	return nil
}

// findOwned loads the appointment and enforces that patients and doctors only
// reach their own rows. Admins see everything.
func (u *appointmentUsecase) findOwned(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID) (*entity.Appointment, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	switch roleID {
	case entity.RoleIDPatient:
		patient, err := u.provisionService.EnsurePatient(ctx, db, userID)
		if err != nil {
			return nil, err
		}
		if appointment.PatientID != patient.ID {
			return nil, ErrNotOwner
		}
	case entity.RoleIDDoctor:
		doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
		if err != nil {
			return nil, err
		}
		if appointment.DoctorID != doctor.ID {
			return nil, ErrNotOwner
		}
	}

	return appointment, nil
}

// buildAppointmentPatch translates a partial-update request into a column map.
// Returns ErrNoFieldsToUpdate when every field is nil.
func buildAppointmentPatch(req *dto.UpdateAppointmentRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if req.AppointmentDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		fields["appointment_date"] = parsed
	}
	if req.AppointmentTime != nil {
		if _, err := time.Parse("15:04", *req.AppointmentTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		fields["appointment_time"] = *req.AppointmentTime
	}
	if req.ReasonForVisit != nil {
		fields["reason_for_visit"] = *req.ReasonForVisit
	}
	if req.Symptoms != nil {
		fields["symptoms"] = *req.Symptoms
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.Status != nil {
		if !entity.ValidAppointmentStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		fields["status"] = *req.Status
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	return fields, nil
}
