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

var ErrConsultationNoteNotFound = errors.New("consultation note not found")

type ConsultationNoteUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateConsultationNoteRequest) (*dto.ConsultationNoteResponse, error)
	List(ctx context.Context, userID uuid.UUID, roleID int) ([]dto.ConsultationNoteResponse, error)
	ListByAppointment(ctx context.Context, userID uuid.UUID, roleID int, appointmentID uuid.UUID) ([]dto.ConsultationNoteResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateConsultationNoteRequest) error
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type consultationNoteUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	noteRepo         repository.ConsultationNoteRepository
	appointmentRepo  repository.AppointmentRepository
	provisionService *service.ProvisionService
}

func NewConsultationNoteUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	noteRepo repository.ConsultationNoteRepository,
	appointmentRepo repository.AppointmentRepository,
	provisionService *service.ProvisionService,
) ConsultationNoteUsecase {
	return &consultationNoteUsecase{
		db:               db,
		log:              log,
		noteRepo:         noteRepo,
		appointmentRepo:  appointmentRepo,
		provisionService: provisionService,
	}
}

func (u *consultationNoteUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateConsultationNoteRequest) (*dto.ConsultationNoteResponse, error) {
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

	note := &entity.ConsultationNote{
		AppointmentID:   appointment.ID,
		DoctorID:        doctor.ID,
		PatientID:       appointment.PatientID,
		Vitals:          entity.JSON(req.Vitals),
		Observations:    req.Observations,
		Recommendations: req.Recommendations,
	}

	if err := u.noteRepo.Create(db, note); err != nil {
		u.log.Warnf("Failed to create consultation note: %+v", err)
		return nil, err
	}

	return converter.ConsultationNoteToResponse(note), nil
}

func (u *consultationNoteUsecase) List(ctx context.Context, userID uuid.UUID, roleID int) ([]dto.ConsultationNoteResponse, error) {
	db := u.db.WithContext(ctx)

	var notes []entity.ConsultationNote
	var err error

	switch roleID {
	case entity.RoleIDPatient:
		patient, perr := u.provisionService.EnsurePatient(ctx, db, userID)
		if perr != nil {
			return nil, perr
		}
		notes, err = u.noteRepo.FindByPatientID(db, patient.ID)
	case entity.RoleIDDoctor:
		doctor, derr := u.provisionService.EnsureDoctor(ctx, db, userID)
		if derr != nil {
			return nil, derr
		}
		notes, err = u.noteRepo.FindByDoctorID(db, doctor.ID)
	default:
		notes, err = u.noteRepo.FindAll(db)
	}

	if err != nil {
		u.log.Warnf("Failed to list consultation notes: %+v", err)
		return nil, err
	}

	return converter.ConsultationNotesToResponses(notes), nil
}

func (u *consultationNoteUsecase) ListByAppointment(ctx context.Context, userID uuid.UUID, roleID int, appointmentID uuid.UUID) ([]dto.ConsultationNoteResponse, error) {
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

	notes, err := u.noteRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to list consultation notes: %+v", err)
		return nil, err
	}

	return converter.ConsultationNotesToResponses(notes), nil
}

func (u *consultationNoteUsecase) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateConsultationNoteRequest) error {
	db := u.db.WithContext(ctx)

	doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
	if err != nil {
		return err
	}

	fields, err := buildConsultationNotePatch(req)
	if err != nil {
		return err
	}

	rows, err := u.noteRepo.UpdateScoped(db, id, doctor.ID, fields)
	if err != nil {
		u.log.Warnf("Failed to update consultation note: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrConsultationNoteNotFound
	}

	return nil
}

func (u *consultationNoteUsecase) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	doctor, err := u.provisionService.EnsureDoctor(ctx, db, userID)
	if err != nil {
		return err
	}

	rows, err := u.noteRepo.DeleteScoped(db, id, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to delete consultation note: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrConsultationNoteNotFound
	}

	return nil
}

func buildConsultationNotePatch(req *dto.UpdateConsultationNoteRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if req.Vitals != nil {
		fields["vitals"] = entity.JSON(req.Vitals)
	}
	if req.Observations != nil {
		fields["observations"] = *req.Observations
	}
	if req.Recommendations != nil {
		fields["recommendations"] = *req.Recommendations
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	return fields, nil
}
