package handler

import (
	"net/http"

	"encontrapsi/internal/converter"
	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/domain/entity"
	"encontrapsi/pkg/response"

	"github.com/gorilla/mux"
)

// TherapyHandler serves the static therapy approach catalog.
type TherapyHandler struct{}

func NewTherapyHandler() *TherapyHandler {
	return &TherapyHandler{}
}

// List returns all approaches in their fixed order
func (h *TherapyHandler) List(w http.ResponseWriter, r *http.Request) {
	therapies := make([]dto.TherapyResponse, 0, len(entity.AllApproaches))
	for _, approach := range entity.AllApproaches {
		therapies = append(therapies, converter.TherapyToResponse(entity.TherapyCatalog[approach]))
	}

	response.Success(w, http.StatusOK, "Therapy approaches retrieved", therapies)
}

// Get returns the detail page content of one approach
func (h *TherapyHandler) Get(w http.ResponseWriter, r *http.Request) {
	approach := entity.TherapyApproach(mux.Vars(r)["id"])

	info, ok := entity.TherapyCatalog[approach]
	if !ok {
		response.NotFound(w, "Therapy approach not found")
		return
	}

	response.Success(w, http.StatusOK, "Therapy approach retrieved", converter.TherapyToDetailResponse(info))
}
