package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/recruitment"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/user"
	"github.com/simpeg-app/simpeg-backend-go/internal/handler/http/response"
)

type RecruitmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	Apply(w http.ResponseWriter, r *http.Request)
	ListCandidates(w http.ResponseWriter, r *http.Request)
	TransitionByUser(w http.ResponseWriter, r *http.Request)

	ListAllCandidates(w http.ResponseWriter, r *http.Request)
	GetCandidate(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
	DeleteCandidate(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService) RecruitmentHandler {
	return &recruitmentHandlerImpl{
		recruitmentService: recruitmentService,
	}
}

// Create implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateRecruitmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recruitmentService.CreateRecruitment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Recruitment created", result)
}

// Get implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.recruitmentService.GetRecruitment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter recruitment.RecruitmentFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if active := r.URL.Query().Get("is_active"); active != "" {
		isActive := active == "true"
		filter.IsActive = &isActive
	}

	result, err := h.recruitmentService.ListRecruitments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpdateRecruitmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.recruitmentService.UpdateRecruitment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Recruitment updated", result)
}

// Delete implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.recruitmentService.DeleteRecruitment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Recruitment deleted", nil)
}

// Apply implements RecruitmentHandler. The applicant is the
// authenticated user.
func (h *recruitmentHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.HandleError(w, user.ErrUserNotFound)
		return
	}

	result, err := h.recruitmentService.Apply(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application submitted", result)
}

// ListCandidates implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.recruitmentService.ListCandidates(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TransitionByUser implements RecruitmentHandler. Addresses the candidate
// by (recruitment, user) instead of the candidate id.
func (h *recruitmentHandlerImpl) TransitionByUser(w http.ResponseWriter, r *http.Request) {
	var req recruitment.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recruitmentService.TransitionByUser(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userId"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate status updated", result)
}

// ListAllCandidates implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListAllCandidates(w http.ResponseWriter, r *http.Request) {
	var filter recruitment.CandidateFilter
	q := r.URL.Query()
	if status := q.Get("status"); status != "" {
		filter.Status = &status
	}
	if start := q.Get("date_start"); start != "" {
		filter.DateStart = &start
	}
	if end := q.Get("date_end"); end != "" {
		filter.DateEnd = &end
	}

	result, err := h.recruitmentService.ListAllCandidates(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCandidate implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) GetCandidate(w http.ResponseWriter, r *http.Request) {
	result, err := h.recruitmentService.GetCandidate(r.Context(), chi.URLParam(r, "candidateId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Transition implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) Transition(w http.ResponseWriter, r *http.Request) {
	var req recruitment.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CandidateID = chi.URLParam(r, "candidateId")

	result, err := h.recruitmentService.Transition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate status updated", result)
}

// DeleteCandidate implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	if err := h.recruitmentService.DeleteCandidate(r.Context(), chi.URLParam(r, "candidateId")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate deleted", nil)
}
