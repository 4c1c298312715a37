package usecase

import (
	"testing"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

func intPtr(i int) *int { return &i }

func TestBuildPrescriptionPatch(t *testing.T) {
	fields, err := buildPrescriptionPatch(&dto.UpdatePrescriptionRequest{
		Medications:  strPtr("amoxicillin 500mg"),
		DurationDays: intPtr(7),
	})
	if err != nil {
		t.Fatalf("buildPrescriptionPatch returned error: %v", err)
	}
	if fields["medications"] != "amoxicillin 500mg" {
		t.Errorf("medications = %v", fields["medications"])
	}
	if fields["duration_days"] != 7 {
		t.Errorf("duration_days = %v", fields["duration_days"])
	}
	if _, ok := fields["dosage"]; ok {
		t.Error("dosage should be absent when not supplied")
	}
}

func TestBuildPrescriptionPatchEmpty(t *testing.T) {
	if _, err := buildPrescriptionPatch(&dto.UpdatePrescriptionRequest{}); err != ErrNoFieldsToUpdate {
		t.Fatalf("err = %v, want ErrNoFieldsToUpdate", err)
	}
}

func TestBuildDiagnosisPatch(t *testing.T) {
	fields, err := buildDiagnosisPatch(&dto.UpdateDiagnosisRequest{
		Diagnosis: strPtr("acute bronchitis"),
		ICDCode:   strPtr("J20.9"),
	})
	if err != nil {
		t.Fatalf("buildDiagnosisPatch returned error: %v", err)
	}
	if fields["diagnosis"] != "acute bronchitis" {
		t.Errorf("diagnosis = %v", fields["diagnosis"])
	}
	if fields["icd_code"] != "J20.9" {
		t.Errorf("icd_code = %v", fields["icd_code"])
	}
}

func TestBuildDiagnosisPatchEmpty(t *testing.T) {
	if _, err := buildDiagnosisPatch(&dto.UpdateDiagnosisRequest{}); err != ErrNoFieldsToUpdate {
		t.Fatalf("err = %v, want ErrNoFieldsToUpdate", err)
	}
}

func TestBuildConsultationNotePatch(t *testing.T) {
	fields, err := buildConsultationNotePatch(&dto.UpdateConsultationNoteRequest{
		Vitals:       map[string]interface{}{"bp": "130/85"},
		Observations: strPtr("persistent cough"),
	})
	if err != nil {
		t.Fatalf("buildConsultationNotePatch returned error: %v", err)
	}

	vitals, ok := fields["vitals"].(entity.JSON)
	if !ok {
		t.Fatalf("vitals has type %T, want entity.JSON", fields["vitals"])
	}
	if vitals["bp"] != "130/85" {
		t.Errorf("vitals bp = %v", vitals["bp"])
	}
	if fields["observations"] != "persistent cough" {
		t.Errorf("observations = %v", fields["observations"])
	}
}

func TestBuildConsultationNotePatchEmpty(t *testing.T) {
	if _, err := buildConsultationNotePatch(&dto.UpdateConsultationNoteRequest{}); err != ErrNoFieldsToUpdate {
		t.Fatalf("err = %v, want ErrNoFieldsToUpdate", err)
	}
}
