package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrProvisionFailed is returned when a role record could neither be found
// nor created for the caller
var ErrProvisionFailed = errors.New("failed to provision role record")

// ProvisionService lazily creates the role-specific record (patient or
// doctor) the first time an identity needs one. Both ensure methods are
// idempotent under concurrent calls: the unique constraint on user_id is the
// correctness backstop, and a duplicate-insert race is treated as "already
// exists" followed by a re-read, never surfaced as a fault.
type ProvisionService struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

func NewProvisionService(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) *ProvisionService {
	return &ProvisionService{
		log:         log,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

// EnsurePatient returns the patient record for userID, creating an empty
// profile when none exists yet.
func (s *ProvisionService) EnsurePatient(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	patient, err := s.patientRepo.FindByUserID(db, userID)
	if err != nil {
		s.log.Warnf("Failed to look up patient for user %s: %+v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrProvisionFailed, err)
	}
	if patient != nil {
		return patient, nil
	}

	patient = &entity.Patient{UserID: userID}
	if err := s.patientRepo.Create(db, patient); err != nil {
		if IsDuplicateKeyError(err, "user_id") {
			// Lost the race against a concurrent call; the row exists now.
			return s.patientRepo.FindByUserID(db, userID)
		}
		s.log.Warnf("Failed to create patient record for user %s: %+v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrProvisionFailed, err)
	}

	s.log.Infof("Auto-provisioned patient record %s for user %s", patient.ID, userID)
	return patient, nil
}

// EnsureDoctor returns the doctor record for userID, creating one with safe
// defaults when none exists yet.
func (s *ProvisionService) EnsureDoctor(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	doctor, err := s.doctorRepo.FindByUserID(db, userID)
	if err != nil {
		s.log.Warnf("Failed to look up doctor for user %s: %+v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrProvisionFailed, err)
	}
	if doctor != nil {
		return doctor, nil
	}

	fee, err := decimal.NewFromString(entity.DefaultConsultationFee)
	if err != nil {
		return nil, err
	}

	doctor = &entity.Doctor{
		UserID:             userID,
		Specialization:     entity.DefaultSpecialization,
		LicenseNumber:      synthesizeLicenseNumber(),
		ExperienceYears:    0,
		ConsultationFee:    fee,
		AvailabilityStatus: entity.DoctorAvailable,
	}
	if err := s.doctorRepo.Create(db, doctor); err != nil {
		if IsDuplicateKeyError(err, "user_id") {
			return s.doctorRepo.FindByUserID(db, userID)
		}
		s.log.Warnf("Failed to create doctor record for user %s: %+v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrProvisionFailed, err)
	}

	s.log.Infof("Auto-provisioned doctor record %s for user %s", doctor.ID, userID)
	return doctor, nil
}

// synthesizeLicenseNumber builds a placeholder license number that satisfies
// the unique constraint until the doctor supplies a real one.
func synthesizeLicenseNumber() string {
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("TMP-%s", fragment[:12])
}
