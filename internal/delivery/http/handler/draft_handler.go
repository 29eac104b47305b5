package handler

import (
	"encoding/json"
	"net/http"

	"estatehub/internal/delivery/dto"
	"estatehub/internal/usecase"
	"estatehub/pkg/response"
	"estatehub/pkg/validator"
)

type DraftHandler struct {
	draftUsecase usecase.DraftUsecase
	validator    *validator.CustomValidator
}

func NewDraftHandler(draftUsecase usecase.DraftUsecase, validator *validator.CustomValidator) *DraftHandler {
	return &DraftHandler{
		draftUsecase: draftUsecase,
		validator:    validator,
	}
}

func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.draftUsecase.GetDraft(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get draft")
		return
	}

	response.Success(w, http.StatusOK, "Draft retrieved successfully", draft)
}

func (h *DraftHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	draft, err := h.draftUsecase.UpdateDetails(r.Context(), &req)
	if err != nil {
		if sessionEnded(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to update draft")
		return
	}

	response.Success(w, http.StatusOK, "Draft updated successfully", draft)
}

// SelectDate answers with the resulting draft; a past date leaves it unchanged
func (h *DraftHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	draft, err := h.draftUsecase.SelectDate(r.Context(), &req)
	if err != nil {
		if sessionEnded(w, err) {
			return
		}
		switch err {
		case usecase.ErrInvalidDate:
			response.BadRequest(w, "Invalid date")
		default:
			response.InternalServerError(w, "Failed to select date")
		}
		return
	}

	response.Success(w, http.StatusOK, "Draft updated successfully", draft)
}

// SelectTime answers with the resulting draft; an unavailable slot leaves it unchanged
func (h *DraftHandler) SelectTime(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	draft, err := h.draftUsecase.SelectTime(r.Context(), &req)
	if err != nil {
		if sessionEnded(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to select time")
		return
	}

	response.Success(w, http.StatusOK, "Draft updated successfully", draft)
}
