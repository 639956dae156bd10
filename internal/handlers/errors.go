package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"collegepath/internal/service"
	"collegepath/internal/validation"
)

// errorResponse is the JSON error envelope for all API errors
type errorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondJSON(w, status, errorResponse{Error: userMsg})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

// respondServiceError maps well-known service errors onto HTTP statuses.
// Validation errors and ownership errors carry their message to the
// client; anything unrecognized is a 500 with a generic message.
func respondServiceError(w http.ResponseWriter, err error) {
	var validationErr validation.ValidationError
	if errors.As(err, &validationErr) {
		respondWithError(w, http.StatusBadRequest, validationErr.Error(), "", nil)
		return
	}

	switch {
	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrAssignmentNotFound),
		errors.Is(err, service.ErrScoreNotFound),
		errors.Is(err, service.ErrTargetNotFound),
		errors.Is(err, service.ErrUniversityNotFound),
		errors.Is(err, service.ErrPortfolioItemNotFound):
		respondWithError(w, http.StatusNotFound, err.Error(), "", nil)
	case errors.Is(err, service.ErrNotCourseOwner),
		errors.Is(err, service.ErrNotScoreOwner),
		errors.Is(err, service.ErrNotTargetOwner),
		errors.Is(err, service.ErrNotPortfolioOwner):
		respondWithError(w, http.StatusForbidden, ErrForbidden, "", nil)
	case errors.Is(err, service.ErrCourseFinalized),
		errors.Is(err, service.ErrGradeUndefined),
		errors.Is(err, service.ErrTargetExists),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInviteRequired),
		errors.Is(err, service.ErrInvalidInvite):
		respondWithError(w, http.StatusConflict, err.Error(), "", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error(), "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "request failed", err)
	}
}
