package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/assessment"
	"github.com/simpeg-app/simpeg-backend-go/internal/handler/http/response"
)

type AssessmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type assessmentHandlerImpl struct {
	assessmentService assessment.AssessmentService
}

func NewAssessmentHandler(assessmentService assessment.AssessmentService) AssessmentHandler {
	return &assessmentHandlerImpl{assessmentService: assessmentService}
}

// Create implements AssessmentHandler.
func (h *assessmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req assessment.CreateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assessmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assessment recorded", result)
}

// Get implements AssessmentHandler.
func (h *assessmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.assessmentService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AssessmentHandler.
func (h *assessmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter assessment.AssessmentFilter
	if employeeID := r.URL.Query().Get("employee"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	result, err := h.assessmentService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AssessmentHandler.
func (h *assessmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req assessment.UpdateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.assessmentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assessment updated", result)
}

// Delete implements AssessmentHandler.
func (h *assessmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.assessmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assessment deleted", nil)
}
