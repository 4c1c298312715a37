package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type stubPatientRepo struct {
	patients  map[uuid.UUID]*entity.Patient
	creates   int
	createErr error
	raceRow   *entity.Patient
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{patients: map[uuid.UUID]*entity.Patient{}}
}

func (s *stubPatientRepo) Create(_ *gorm.DB, patient *entity.Patient) error {
	s.creates++
	if s.createErr != nil {
		err := s.createErr
		s.createErr = nil
		if s.raceRow != nil {
			s.patients[s.raceRow.ID] = s.raceRow
			s.raceRow = nil
		}
		return err
	}
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	s.patients[patient.ID] = patient
	return nil
}

func (s *stubPatientRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return s.patients[id], nil
}

func (s *stubPatientRepo) FindByUserID(_ *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	for _, p := range s.patients {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubPatientRepo) Update(_ *gorm.DB, patient *entity.Patient) error {
	s.patients[patient.ID] = patient
	return nil
}

type stubDoctorRepo struct {
	doctors map[uuid.UUID]*entity.Doctor
	creates int
}

func newStubDoctorRepo() *stubDoctorRepo {
	return &stubDoctorRepo{doctors: map[uuid.UUID]*entity.Doctor{}}
}

func (s *stubDoctorRepo) Create(_ *gorm.DB, doctor *entity.Doctor) error {
	s.creates++
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	s.doctors[doctor.ID] = doctor
	return nil
}

func (s *stubDoctorRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return s.doctors[id], nil
}

func (s *stubDoctorRepo) FindByUserID(_ *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	for _, d := range s.doctors {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, nil
}

func (s *stubDoctorRepo) FindAll(_ *gorm.DB) ([]entity.Doctor, error) {
	out := make([]entity.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (s *stubDoctorRepo) Update(_ *gorm.DB, doctor *entity.Doctor) error {
	s.doctors[doctor.ID] = doctor
	return nil
}

func (s *stubDoctorRepo) UpdateRatingStats(_ *gorm.DB, doctorID uuid.UUID, rating float64, totalReviews int) error {
	return nil
}

func newTestProvisionService() (*ProvisionService, *stubPatientRepo, *stubDoctorRepo) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	patients := newStubPatientRepo()
	doctors := newStubDoctorRepo()
	return NewProvisionService(log, patients, doctors), patients, doctors
}

func TestEnsurePatientIdempotent(t *testing.T) {
	svc, patients, _ := newTestProvisionService()
	userID := uuid.New()

	first, err := svc.EnsurePatient(context.Background(), nil, userID)
	if err != nil {
		t.Fatalf("first EnsurePatient failed: %v", err)
	}
	second, err := svc.EnsurePatient(context.Background(), nil, userID)
	if err != nil {
		t.Fatalf("second EnsurePatient failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second call returned %s, want existing row %s", second.ID, first.ID)
	}
	if patients.creates != 1 {
		t.Errorf("creates = %d, want 1", patients.creates)
	}
}

func TestEnsurePatientLostCreateRace(t *testing.T) {
	svc, patients, _ := newTestProvisionService()
	userID := uuid.New()

	winner := &entity.Patient{ID: uuid.New(), UserID: userID}
	patients.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "idx_patients_user_id"}
	patients.raceRow = winner

	patient, err := svc.EnsurePatient(context.Background(), nil, userID)
	if err != nil {
		t.Fatalf("EnsurePatient failed after lost race: %v", err)
	}
	if patient.ID != winner.ID {
		t.Errorf("patient.ID = %s, want the concurrent winner %s", patient.ID, winner.ID)
	}
}

func TestEnsureDoctorDefaults(t *testing.T) {
	svc, _, doctors := newTestProvisionService()
	userID := uuid.New()

	doctor, err := svc.EnsureDoctor(context.Background(), nil, userID)
	if err != nil {
		t.Fatalf("EnsureDoctor failed: %v", err)
	}

	if doctor.Specialization != entity.DefaultSpecialization {
		t.Errorf("specialization = %q, want %q", doctor.Specialization, entity.DefaultSpecialization)
	}
	wantFee, _ := decimal.NewFromString(entity.DefaultConsultationFee)
	if !doctor.ConsultationFee.Equal(wantFee) {
		t.Errorf("fee = %s, want %s", doctor.ConsultationFee, wantFee)
	}
	if !strings.HasPrefix(doctor.LicenseNumber, "TMP-") {
		t.Errorf("license = %q, want TMP- placeholder", doctor.LicenseNumber)
	}
	if doctor.AvailabilityStatus != entity.DoctorAvailable {
		t.Errorf("availability = %q, want %q", doctor.AvailabilityStatus, entity.DoctorAvailable)
	}

	again, err := svc.EnsureDoctor(context.Background(), nil, userID)
	if err != nil {
		t.Fatalf("second EnsureDoctor failed: %v", err)
	}
	if again.ID != doctor.ID || doctors.creates != 1 {
		t.Errorf("second call created a new row (creates = %d)", doctors.creates)
	}
}

func TestSynthesizeLicenseNumberFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		license := synthesizeLicenseNumber()

		if !strings.HasPrefix(license, "TMP-") {
			t.Fatalf("license %q missing TMP- prefix", license)
		}
		fragment := strings.TrimPrefix(license, "TMP-")
		if len(fragment) != 12 {
			t.Fatalf("license fragment %q has length %d, want 12", fragment, len(fragment))
		}
		for _, c := range fragment {
			isHex := (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
			if !isHex {
				t.Fatalf("license fragment %q contains non-hex character %q", fragment, c)
			}
		}

		if seen[license] {
			t.Fatalf("duplicate license generated: %s", license)
		}
		seen[license] = true
	}
}
