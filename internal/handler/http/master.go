package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/master/department"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/master/position"
	"github.com/simpeg-app/simpeg-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreatePosition(w http.ResponseWriter, r *http.Request)
	GetPosition(w http.ResponseWriter, r *http.Request)
	ListPositions(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	departmentService department.DepartmentService
	positionService   position.PositionService
}

func NewMasterHandler(departmentService department.DepartmentService, positionService position.PositionService) MasterHandler {
	return &masterHandlerImpl{
		departmentService: departmentService,
		positionService:   positionService,
	}
}

// CreateDepartment implements MasterHandler.
func (h *masterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departmentService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", result)
}

// GetDepartment implements MasterHandler.
func (h *masterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentService.GetDepartment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDepartments implements MasterHandler.
func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteDepartment implements MasterHandler.
func (h *masterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.departmentService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted", nil)
}

// CreatePosition implements MasterHandler.
func (h *masterHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req position.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.positionService.CreatePosition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created", result)
}

// GetPosition implements MasterHandler.
func (h *masterHandlerImpl) GetPosition(w http.ResponseWriter, r *http.Request) {
	result, err := h.positionService.GetPosition(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPositions implements MasterHandler.
func (h *masterHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	result, err := h.positionService.ListPositions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeletePosition implements MasterHandler.
func (h *masterHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	if err := h.positionService.DeletePosition(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position deleted", nil)
}
