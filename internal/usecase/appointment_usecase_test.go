package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestBuildAppointmentPatchEmpty(t *testing.T) {
	_, err := buildAppointmentPatch(&dto.UpdateAppointmentRequest{})
	if err != ErrNoFieldsToUpdate {
		t.Fatalf("err = %v, want ErrNoFieldsToUpdate", err)
	}
}

func TestBuildAppointmentPatchFields(t *testing.T) {
	req := &dto.UpdateAppointmentRequest{
		AppointmentDate: strPtr("2026-03-14"),
		AppointmentTime: strPtr("09:30"),
		Notes:           strPtr("follow up in two weeks"),
		Status:          strPtr("completed"),
	}

	fields, err := buildAppointmentPatch(req)
	if err != nil {
		t.Fatalf("buildAppointmentPatch returned error: %v", err)
	}
	if len(fields) != 4 {
		t.Fatalf("len(fields) = %d, want 4", len(fields))
	}

	date, ok := fields["appointment_date"].(time.Time)
	if !ok {
		t.Fatalf("appointment_date has type %T, want time.Time", fields["appointment_date"])
	}
	if date.Format("2006-01-02") != "2026-03-14" {
		t.Errorf("appointment_date = %s", date.Format("2006-01-02"))
	}
	if fields["appointment_time"] != "09:30" {
		t.Errorf("appointment_time = %v", fields["appointment_time"])
	}
	if fields["notes"] != "follow up in two weeks" {
		t.Errorf("notes = %v", fields["notes"])
	}
	if fields["status"] != "completed" {
		t.Errorf("status = %v", fields["status"])
	}
}

func TestBuildAppointmentPatchEmptyStringClearsField(t *testing.T) {
	fields, err := buildAppointmentPatch(&dto.UpdateAppointmentRequest{Symptoms: strPtr("")})
	if err != nil {
		t.Fatalf("buildAppointmentPatch returned error: %v", err)
	}
	if v, ok := fields["symptoms"]; !ok || v != "" {
		t.Errorf("symptoms = %v, want empty string present", v)
	}
}

func TestBuildAppointmentPatchInvalidStatus(t *testing.T) {
	_, err := buildAppointmentPatch(&dto.UpdateAppointmentRequest{Status: strPtr("rescheduled")})
	if err != ErrInvalidStatus {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestBuildAppointmentPatchInvalidDate(t *testing.T) {
	_, err := buildAppointmentPatch(&dto.UpdateAppointmentRequest{AppointmentDate: strPtr("14-03-2026")})
	if err != ErrInvalidDateFormat {
		t.Fatalf("err = %v, want ErrInvalidDateFormat", err)
	}
}

func TestBuildAppointmentPatchInvalidTime(t *testing.T) {
	_, err := buildAppointmentPatch(&dto.UpdateAppointmentRequest{AppointmentTime: strPtr("9:99")})
	if err != ErrInvalidTimeFormat {
		t.Fatalf("err = %v, want ErrInvalidTimeFormat", err)
	}
}

func TestCreateAppointmentDuplicateSlot(t *testing.T) {
	env := newAppointmentTestEnv(t)
	doctor := env.doctors.seed("Cardiology")
	userID := uuid.New()

	req := &dto.CreateAppointmentRequest{
		DoctorID:        doctor.ID.String(),
		AppointmentDate: "2026-09-10",
		AppointmentTime: "09:30",
	}

	first, err := env.uc.Create(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if first.Status != string(entity.AppointmentStatusScheduled) {
		t.Errorf("status = %q, want scheduled", first.Status)
	}
	if len(env.notifications.created) != 2 {
		t.Errorf("notification count = %d, want 2 (patient and doctor)", len(env.notifications.created))
	}

	if _, err := env.uc.Create(context.Background(), userID, req); err != ErrDuplicateAppointment {
		t.Fatalf("second create err = %v, want ErrDuplicateAppointment", err)
	}
	if len(env.appointments.appointments) != 1 {
		t.Errorf("appointment count = %d, want 1", len(env.appointments.appointments))
	}
	if len(env.patients.patients) != 1 {
		t.Errorf("patient count = %d, want 1 auto-provisioned row reused", len(env.patients.patients))
	}
}

func TestCreateAppointmentCancelledSlotReusable(t *testing.T) {
	env := newAppointmentTestEnv(t)
	doctor := env.doctors.seed("Dermatology")
	userID := uuid.New()

	req := &dto.CreateAppointmentRequest{
		DoctorID:        doctor.ID.String(),
		AppointmentDate: "2026-09-11",
		AppointmentTime: "14:00",
	}

	first, err := env.uc.Create(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := env.uc.Cancel(context.Background(), userID, entity.RoleIDPatient, first.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	second, err := env.uc.Create(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("rebooking a cancelled slot failed: %v", err)
	}
	if second.ID == first.ID {
		t.Error("rebooking reused the cancelled row instead of creating a new one")
	}
	if len(env.appointments.appointments) != 2 {
		t.Errorf("appointment count = %d, want 2", len(env.appointments.appointments))
	}
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	env := newAppointmentTestEnv(t)

	req := &dto.CreateAppointmentRequest{
		DoctorID:        uuid.New().String(),
		AppointmentDate: "2026-09-10",
		AppointmentTime: "09:30",
	}

	if _, err := env.uc.Create(context.Background(), uuid.New(), req); err != ErrDoctorNotFound {
		t.Fatalf("err = %v, want ErrDoctorNotFound", err)
	}
}

func TestCreateAppointmentLostInsertRace(t *testing.T) {
	env := newAppointmentTestEnv(t)
	doctor := env.doctors.seed("Cardiology")
	env.appointments.createErr = duplicateKeyErr("idx_appointments_active_slot")

	req := &dto.CreateAppointmentRequest{
		DoctorID:        doctor.ID.String(),
		AppointmentDate: "2026-09-10",
		AppointmentTime: "09:30",
	}

	if _, err := env.uc.Create(context.Background(), uuid.New(), req); err != ErrDuplicateAppointment {
		t.Fatalf("err = %v, want ErrDuplicateAppointment on unique-index race", err)
	}
}
