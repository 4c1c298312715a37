package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity to its DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:            prescription.ID,
		AppointmentID: prescription.AppointmentID,
		DoctorID:      prescription.DoctorID,
		PatientID:     prescription.PatientID,
		Medications:   prescription.Medications,
		Dosage:        prescription.Dosage,
		Instructions:  prescription.Instructions,
		DurationDays:  prescription.DurationDays,
		Notes:         prescription.Notes,
		CreatedAt:     prescription.CreatedAt,
		UpdatedAt:     prescription.UpdatedAt,
	}

	if prescription.Doctor.User.FullName != "" {
		response.DoctorName = prescription.Doctor.User.FullName
	}
	if prescription.Patient.User.FullName != "" {
		response.PatientName = prescription.Patient.User.FullName
	}

	return response
}

// PrescriptionsToResponses converts a slice of Prescription entities
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		resp := PrescriptionToResponse(&prescription)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
