package handler

import (
	"net/http"

	"estatehub/internal/usecase"
	"estatehub/pkg/response"

	"github.com/gorilla/mux"
)

type PropertyHandler struct {
	propertyUsecase usecase.PropertyUsecase
}

func NewPropertyHandler(propertyUsecase usecase.PropertyUsecase) *PropertyHandler {
	return &PropertyHandler{
		propertyUsecase: propertyUsecase,
	}
}

func (h *PropertyHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	properties, err := h.propertyUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get properties")
		return
	}

	response.Success(w, http.StatusOK, "Properties retrieved successfully", properties)
}

func (h *PropertyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	property, err := h.propertyUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPropertyNotFound:
			response.NotFound(w, "Property not found")
		default:
			response.InternalServerError(w, "Failed to get property")
		}
		return
	}

	response.Success(w, http.StatusOK, "Property retrieved successfully", property)
}
