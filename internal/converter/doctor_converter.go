package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:                 doctor.ID,
		UserID:             doctor.UserID,
		Specialization:     doctor.Specialization,
		LicenseNumber:      doctor.LicenseNumber,
		ExperienceYears:    doctor.ExperienceYears,
		ConsultationFee:    doctor.ConsultationFee,
		Rating:             doctor.Rating,
		TotalReviews:       doctor.TotalReviews,
		AvailabilityStatus: doctor.AvailabilityStatus,
		CreatedAt:          doctor.CreatedAt,
		UpdatedAt:          doctor.UpdatedAt,
	}

	if doctor.User.FullName != "" {
		response.FullName = doctor.User.FullName
		response.Email = doctor.User.Email
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp := DoctorToResponse(&doctor)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
