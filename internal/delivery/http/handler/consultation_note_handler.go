package handler

import (
	"encoding/json"
	"net/http"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ConsultationNoteHandler struct {
	noteUsecase usecase.ConsultationNoteUsecase
	validator   *validator.CustomValidator
}

func NewConsultationNoteHandler(noteUsecase usecase.ConsultationNoteUsecase, validator *validator.CustomValidator) *ConsultationNoteHandler {
	return &ConsultationNoteHandler{
		noteUsecase: noteUsecase,
		validator:   validator,
	}
}

func (h *ConsultationNoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateConsultationNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	note, err := h.noteUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotOwner:
			response.Forbidden(w, "Appointment does not belong to you")
		default:
			response.InternalServerError(w, "Failed to create consultation note")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation note created successfully", note)
}

func (h *ConsultationNoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	roleID, _ := middleware.GetRoleIDFromContext(r.Context())

	notes, err := h.noteUsecase.List(r.Context(), userID, roleID)
	if err != nil {
		response.InternalServerError(w, "Failed to get consultation notes")
		return
	}

	response.Success(w, http.StatusOK, "Consultation notes retrieved successfully", dto.ConsultationNoteListResponse{
		Notes: notes,
		Total: len(notes),
	})
}

func (h *ConsultationNoteHandler) ListByAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	roleID, _ := middleware.GetRoleIDFromContext(r.Context())

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	notes, err := h.noteUsecase.ListByAppointment(r.Context(), userID, roleID, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotOwner:
			response.Forbidden(w, "Appointment does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get consultation notes")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation notes retrieved successfully", dto.ConsultationNoteListResponse{
		Notes: notes,
		Total: len(notes),
	})
}

func (h *ConsultationNoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation note ID", nil)
		return
	}

	var req dto.UpdateConsultationNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.noteUsecase.Update(r.Context(), userID, id, &req); err != nil {
		switch err {
		case usecase.ErrConsultationNoteNotFound:
			response.NotFound(w, "Consultation note not found")
		case usecase.ErrNoFieldsToUpdate:
			response.Error(w, http.StatusBadRequest, "No fields to update", nil)
		default:
			response.InternalServerError(w, "Failed to update consultation note")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation note updated successfully", nil)
}

func (h *ConsultationNoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation note ID", nil)
		return
	}

	if err := h.noteUsecase.Delete(r.Context(), userID, id); err != nil {
		switch err {
		case usecase.ErrConsultationNoteNotFound:
			response.NotFound(w, "Consultation note not found")
		default:
			response.InternalServerError(w, "Failed to delete consultation note")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation note deleted successfully", nil)
}
