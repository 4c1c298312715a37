package entity

import "testing"

func TestValidAppointmentStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "completed", "cancelled"} {
		if !ValidAppointmentStatus(s) {
			t.Errorf("ValidAppointmentStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "SCHEDULED", "rescheduled", "done"} {
		if ValidAppointmentStatus(s) {
			t.Errorf("ValidAppointmentStatus(%q) = true, want false", s)
		}
	}
}

func TestIsCancelled(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusCancelled}
	if !a.IsCancelled() {
		t.Error("expected cancelled appointment to report IsCancelled")
	}
	a.Status = AppointmentStatusScheduled
	if a.IsCancelled() {
		t.Error("expected scheduled appointment not to report IsCancelled")
	}
}

func TestRoleNameByID(t *testing.T) {
	cases := map[int]string{
		RoleIDAdmin:   RoleAdmin,
		RoleIDDoctor:  RoleDoctor,
		RoleIDPatient: RolePatient,
		99:            "",
	}
	for id, want := range cases {
		if got := RoleNameByID(id); got != want {
			t.Errorf("RoleNameByID(%d) = %q, want %q", id, got, want)
		}
	}
}
