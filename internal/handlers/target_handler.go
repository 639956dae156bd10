package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"collegepath/internal/service"
)

type TargetHandler struct {
	targetService *service.TargetService
}

func NewTargetHandler(targetService *service.TargetService) *TargetHandler {
	return &TargetHandler{targetService: targetService}
}

// ListTargets returns the user's university list with cached assessments
func (h *TargetHandler) ListTargets(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	targets, err := h.targetService.ListTargets(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to list targets", err)
		return
	}

	views := make([]targetView, 0, len(targets))
	for i := range targets {
		views = append(views, toTargetView(&targets[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

type targetRequest struct {
	UniversityID int64  `json:"university_id"`
	Reason       string `json:"reason"`
}

// AddTarget puts a university on the user's list
func (h *TargetHandler) AddTarget(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req targetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}
	if req.UniversityID <= 0 {
		respondWithError(w, http.StatusBadRequest, "university_id is required", "", nil)
		return
	}

	target, err := h.targetService.AddTarget(user.ID, req.UniversityID, strings.TrimSpace(req.Reason))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{"id": target.ID})
}

type updateTargetRequest struct {
	Reason string `json:"reason"`
}

// UpdateTarget updates the free-form reason on a target
func (h *TargetHandler) UpdateTarget(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	targetID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid target ID", "", nil)
		return
	}

	var req updateTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	if err := h.targetService.UpdateTarget(user.ID, targetID, strings.TrimSpace(req.Reason)); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// RemoveTarget takes a university off the user's list
func (h *TargetHandler) RemoveTarget(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	targetID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid target ID", "", nil)
		return
	}

	if err := h.targetService.RemoveTarget(user.ID, targetID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AssessTarget classifies one target against the user's academic profile
func (h *TargetHandler) AssessTarget(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	targetID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid target ID", "", nil)
		return
	}

	detail, err := h.targetService.AssessTarget(user.ID, targetID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toTargetView(detail))
}

// AssessAllTargets classifies every target on the user's list
func (h *TargetHandler) AssessAllTargets(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	details, err := h.targetService.AssessAllTargets(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	views := make([]targetView, 0, len(details))
	for i := range details {
		views = append(views, toTargetView(&details[i]))
	}
	respondJSON(w, http.StatusOK, views)
}
