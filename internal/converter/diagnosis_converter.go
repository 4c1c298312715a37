package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// DiagnosisToResponse converts a Diagnosis entity to its DTO
func DiagnosisToResponse(diagnosis *entity.Diagnosis) *dto.DiagnosisResponse {
	if diagnosis == nil {
		return nil
	}

	response := &dto.DiagnosisResponse{
		ID:            diagnosis.ID,
		AppointmentID: diagnosis.AppointmentID,
		DoctorID:      diagnosis.DoctorID,
		PatientID:     diagnosis.PatientID,
		Diagnosis:     diagnosis.Diagnosis,
		ICDCode:       diagnosis.ICDCode,
		Severity:      diagnosis.Severity,
		Notes:         diagnosis.Notes,
		CreatedAt:     diagnosis.CreatedAt,
		UpdatedAt:     diagnosis.UpdatedAt,
	}

	if diagnosis.Doctor.User.FullName != "" {
		response.DoctorName = diagnosis.Doctor.User.FullName
	}
	if diagnosis.Patient.User.FullName != "" {
		response.PatientName = diagnosis.Patient.User.FullName
	}

	return response
}

// DiagnosesToResponses converts a slice of Diagnosis entities
func DiagnosesToResponses(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, len(diagnoses))
	for i, diagnosis := range diagnoses {
		resp := DiagnosisToResponse(&diagnosis)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
