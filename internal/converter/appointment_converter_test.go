package converter

import (
	"testing"
	"time"

	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func TestAppointmentToResponseNil(t *testing.T) {
	if resp := AppointmentToResponse(nil); resp != nil {
		t.Errorf("expected nil response, got %+v", resp)
	}
}

func TestAppointmentToResponse(t *testing.T) {
	appointment := &entity.Appointment{
		ID:              uuid.New(),
		PatientID:       uuid.New(),
		DoctorID:        uuid.New(),
		AppointmentDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "09:30",
		Status:          entity.AppointmentStatusScheduled,
	}

	resp := AppointmentToResponse(appointment)
	if resp.AppointmentDate != "2026-03-14" {
		t.Errorf("AppointmentDate = %q, want 2026-03-14", resp.AppointmentDate)
	}
	if resp.AppointmentTime != "09:30" {
		t.Errorf("AppointmentTime = %q", resp.AppointmentTime)
	}
	if resp.Status != "scheduled" {
		t.Errorf("Status = %q", resp.Status)
	}
	if resp.PatientName != "" || resp.DoctorName != "" {
		t.Error("expected empty display names without preloaded relations")
	}
}

func TestAppointmentToResponsePreloadedNames(t *testing.T) {
	appointment := &entity.Appointment{
		ID:              uuid.New(),
		AppointmentDate: time.Now(),
		Patient:         entity.Patient{User: entity.User{FullName: "Pat Doe"}},
		Doctor: entity.Doctor{
			Specialization: "Cardiology",
			User:           entity.User{FullName: "Dr. Gregory"},
		},
	}

	resp := AppointmentToResponse(appointment)
	if resp.PatientName != "Pat Doe" {
		t.Errorf("PatientName = %q", resp.PatientName)
	}
	if resp.DoctorName != "Dr. Gregory" {
		t.Errorf("DoctorName = %q", resp.DoctorName)
	}
	if resp.Specialization != "Cardiology" {
		t.Errorf("Specialization = %q", resp.Specialization)
	}
}

func TestUserToResponseRoleFallback(t *testing.T) {
	user := &entity.User{
		ID:     uuid.New(),
		RoleID: entity.RoleIDDoctor,
		Status: entity.UserStatusActive,
	}

	resp := UserToResponse(user)
	if resp.Role != entity.RoleDoctor {
		t.Errorf("Role = %q, want %q", resp.Role, entity.RoleDoctor)
	}
}
