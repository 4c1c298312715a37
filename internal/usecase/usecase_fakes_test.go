package usecase

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"
)

// stubDriver gives database/sql a connection that can open and commit
// transactions but never executes statements. Every query in these tests is
// served by the in-memory repositories, which ignore the *gorm.DB they
// receive.
type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return stubConn{}, nil }

type stubConn struct{}

func (stubConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("statements not supported") }
func (stubConn) Close() error                        { return nil }
func (stubConn) Begin() (driver.Tx, error)           { return stubTx{}, nil }

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

var stubDriverOnce sync.Once

func newStubDB(t *testing.T) *gorm.DB {
	t.Helper()

	stubDriverOnce.Do(func() { sql.Register("usecasestub", stubDriver{}) })

	sqlDB, err := sql.Open("usecasestub", "")
	if err != nil {
		t.Fatalf("failed to open stub connection: %v", err)
	}

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		ConnPool:             sqlDB,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("failed to open gorm session: %v", err)
	}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func duplicateKeyErr(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

type fakeDoctorRepo struct {
	doctors     map[uuid.UUID]*entity.Doctor
	statCalls   int
	lastRating  float64
	lastReviews int
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: map[uuid.UUID]*entity.Doctor{}}
}

func (f *fakeDoctorRepo) Create(_ *gorm.DB, doctor *entity.Doctor) error {
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorRepo) FindByUserID(_ *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	for _, d := range f.doctors {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindAll(_ *gorm.DB) ([]entity.Doctor, error) {
	out := make([]entity.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDoctorRepo) Update(_ *gorm.DB, doctor *entity.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) UpdateRatingStats(_ *gorm.DB, doctorID uuid.UUID, rating float64, totalReviews int) error {
	f.statCalls++
	f.lastRating = rating
	f.lastReviews = totalReviews
	if d, ok := f.doctors[doctorID]; ok {
		d.Rating = rating
		d.TotalReviews = totalReviews
	}
	return nil
}

type fakePatientRepo struct {
	patients map[uuid.UUID]*entity.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: map[uuid.UUID]*entity.Patient{}}
}

func (f *fakePatientRepo) Create(_ *gorm.DB, patient *entity.Patient) error {
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	f.patients[patient.ID] = patient
	return nil
}

func (f *fakePatientRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return f.patients[id], nil
}

func (f *fakePatientRepo) FindByUserID(_ *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	for _, p := range f.patients {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) Update(_ *gorm.DB, patient *entity.Patient) error {
	f.patients[patient.ID] = patient
	return nil
}

type fakeAppointmentRepo struct {
	appointments []*entity.Appointment
	createErr    error
}

func (f *fakeAppointmentRepo) Create(_ *gorm.DB, appointment *entity.Appointment) error {
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		return err
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	f.appointments = append(f.appointments, appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByPatientID(_ *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByDoctorID(_ *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindAll(_ *gorm.DB) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindActiveSlot(_ *gorm.DB, patientID, doctorID uuid.UUID, date time.Time, timeOfDay string) (*entity.Appointment, error) {
	for _, a := range f.appointments {
		if a.PatientID == patientID && a.DoctorID == doctorID &&
			a.AppointmentDate.Equal(date) && a.AppointmentTime == timeOfDay &&
			a.Status != entity.AppointmentStatusCancelled {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) UpdateFields(_ *gorm.DB, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			if status, ok := fields["status"].(string); ok {
				a.Status = entity.AppointmentStatus(status)
			}
			if notes, ok := fields["notes"].(string); ok {
				a.Notes = notes
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeAppointmentRepo) Cancel(_ *gorm.DB, id uuid.UUID) (int64, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			a.Status = entity.AppointmentStatusCancelled
			return 1, nil
		}
	}
	return 0, nil
}

type fakeReviewRepo struct {
	reviews   map[uuid.UUID]*entity.Review
	createErr error
	raceRow   *entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[uuid.UUID]*entity.Review{}}
}

func (f *fakeReviewRepo) Create(_ *gorm.DB, review *entity.Review) error {
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		// The concurrent winner's row becomes visible once the losing
		// insert fails.
		if f.raceRow != nil {
			f.reviews[f.raceRow.ID] = f.raceRow
			f.raceRow = nil
		}
		return err
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) FindByDoctorAndPatient(_ *gorm.DB, doctorID, patientID uuid.UUID) (*entity.Review, error) {
	for _, r := range f.reviews {
		if r.DoctorID == doctorID && r.PatientID == patientID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByDoctorID(_ *gorm.DB, doctorID uuid.UUID) ([]entity.Review, error) {
	var out []entity.Review
	for _, r := range f.reviews {
		if r.DoctorID == doctorID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Update(_ *gorm.DB, review *entity.Review) error {
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) DeleteScoped(_ *gorm.DB, id uuid.UUID, patientID uuid.UUID) (*entity.Review, int64, error) {
	r, ok := f.reviews[id]
	if !ok || r.PatientID != patientID {
		return nil, 0, nil
	}
	deleted := *r
	delete(f.reviews, id)
	return &deleted, 1, nil
}

func (f *fakeReviewRepo) AggregateByDoctor(_ *gorm.DB, doctorID uuid.UUID) (*repository.RatingAggregate, error) {
	var sum, count int64
	for _, r := range f.reviews {
		if r.DoctorID == doctorID {
			sum += int64(r.Rating)
			count++
		}
	}
	aggregate := &repository.RatingAggregate{Count: count}
	if count > 0 {
		aggregate.Average = float64(sum) / float64(count)
	}
	return aggregate, nil
}

type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (f *fakeNotificationRepo) Create(_ *gorm.DB, notification *entity.Notification) error {
	f.created = append(f.created, notification)
	return nil
}

func (f *fakeNotificationRepo) FindByUserID(_ *gorm.DB, userID uuid.UUID, limit int) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(_ *gorm.DB, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationRepo) MarkRead(_ *gorm.DB, id int64, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationRepo) MarkAllRead(_ *gorm.DB, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationRepo) DeleteScoped(_ *gorm.DB, id int64, userID uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeAuditLogRepo struct {
	created []*entity.AuditLog
}

func (f *fakeAuditLogRepo) Create(_ *gorm.DB, log *entity.AuditLog) error {
	f.created = append(f.created, log)
	return nil
}

func (f *fakeAuditLogRepo) FindAll(_ *gorm.DB) ([]entity.AuditLog, error) {
	var out []entity.AuditLog
	for _, l := range f.created {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeAuditLogRepo) FindByID(_ *gorm.DB, id int64) (*entity.AuditLog, error) {
	return nil, nil
}

type appointmentTestEnv struct {
	uc            AppointmentUsecase
	doctors       *fakeDoctorRepo
	patients      *fakePatientRepo
	appointments  *fakeAppointmentRepo
	notifications *fakeNotificationRepo
}

func newAppointmentTestEnv(t *testing.T) *appointmentTestEnv {
	t.Helper()

	db := newStubDB(t)
	log := testLogger()
	doctors := newFakeDoctorRepo()
	patients := newFakePatientRepo()
	appointments := &fakeAppointmentRepo{}
	notifications := &fakeNotificationRepo{}

	uc := NewAppointmentUsecase(
		db, log, appointments, doctors,
		service.NewProvisionService(log, patients, doctors),
		service.NewNotificationService(db, log, notifications),
		service.NewAuditService(db, log, &fakeAuditLogRepo{}),
	)

	return &appointmentTestEnv{
		uc:            uc,
		doctors:       doctors,
		patients:      patients,
		appointments:  appointments,
		notifications: notifications,
	}
}

type reviewTestEnv struct {
	uc       ReviewUsecase
	doctors  *fakeDoctorRepo
	patients *fakePatientRepo
	reviews  *fakeReviewRepo
}

func newReviewTestEnv(t *testing.T) *reviewTestEnv {
	t.Helper()

	db := newStubDB(t)
	log := testLogger()
	doctors := newFakeDoctorRepo()
	patients := newFakePatientRepo()
	reviews := newFakeReviewRepo()

	uc := NewReviewUsecase(
		db, log, reviews, doctors,
		service.NewProvisionService(log, patients, doctors),
		service.NewAuditService(db, log, &fakeAuditLogRepo{}),
	)

	return &reviewTestEnv{
		uc:       uc,
		doctors:  doctors,
		patients: patients,
		reviews:  reviews,
	}
}

func (f *fakeDoctorRepo) seed(specialization string) *entity.Doctor {
	doctor := &entity.Doctor{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Specialization: specialization,
	}
	f.doctors[doctor.ID] = doctor
	return doctor
}
