package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// ConsultationNoteToResponse converts a ConsultationNote entity to its DTO.
// Vitals come back from the JSONB column already deserialized into a map;
// the conversion carries them through on every read path.
func ConsultationNoteToResponse(note *entity.ConsultationNote) *dto.ConsultationNoteResponse {
	if note == nil {
		return nil
	}

	response := &dto.ConsultationNoteResponse{
		ID:              note.ID,
		AppointmentID:   note.AppointmentID,
		DoctorID:        note.DoctorID,
		PatientID:       note.PatientID,
		Vitals:          map[string]interface{}(note.Vitals),
		Observations:    note.Observations,
		Recommendations: note.Recommendations,
		CreatedAt:       note.CreatedAt,
		UpdatedAt:       note.UpdatedAt,
	}

	if note.Doctor.User.FullName != "" {
		response.DoctorName = note.Doctor.User.FullName
	}
	if note.Patient.User.FullName != "" {
		response.PatientName = note.Patient.User.FullName
	}

	return response
}

// ConsultationNotesToResponses converts a slice of ConsultationNote entities
func ConsultationNotesToResponses(notes []entity.ConsultationNote) []dto.ConsultationNoteResponse {
	responses := make([]dto.ConsultationNoteResponse, len(notes))
	for i, note := range notes {
		resp := ConsultationNoteToResponse(&note)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
