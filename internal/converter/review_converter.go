package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// ReviewToResponse converts a Review entity to ReviewResponse DTO
func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	response := &dto.ReviewResponse{
		ID:         review.ID,
		DoctorID:   review.DoctorID,
		PatientID:  review.PatientID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}

	if review.Patient.User.FullName != "" {
		response.PatientName = review.Patient.User.FullName
	}

	return response
}

// ReviewsToResponses converts a slice of Review entities
func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i, review := range reviews {
		resp := ReviewToResponse(&review)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
