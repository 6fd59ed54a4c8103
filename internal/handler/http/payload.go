package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/payload"
	"github.com/simpeg-app/simpeg-backend-go/internal/handler/http/response"
)

type PayloadHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	GetByEmployee(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
}

type payloadHandlerImpl struct {
	payloadService payload.PayloadService
}

func NewPayloadHandler(payloadService payload.PayloadService) PayloadHandler {
	return &payloadHandlerImpl{payloadService: payloadService}
}

// Upsert implements PayloadHandler.
func (h *payloadHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req payload.UpsertPayloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payloadService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payload saved", result)
}

// GetByEmployee implements PayloadHandler.
func (h *payloadHandlerImpl) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.payloadService.GetByEmployeeAndMonth(r.Context(), chi.URLParam(r, "employeeId"), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByMonth implements PayloadHandler.
func (h *payloadHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	result, err := h.payloadService.ListByMonth(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
