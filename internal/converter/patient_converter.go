package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:                    patient.ID,
		UserID:                patient.UserID,
		BloodType:             patient.BloodType,
		MedicalHistory:        patient.MedicalHistory,
		Allergies:             patient.Allergies,
		EmergencyContactName:  patient.EmergencyContactName,
		EmergencyContactPhone: patient.EmergencyContactPhone,
		CreatedAt:             patient.CreatedAt,
		UpdatedAt:             patient.UpdatedAt,
	}

	if patient.DateOfBirth != nil {
		response.DateOfBirth = patient.DateOfBirth.Format("2006-01-02")
	}
	if patient.User.FullName != "" {
		response.FullName = patient.User.FullName
		response.Email = patient.User.Email
	}

	return response
}
