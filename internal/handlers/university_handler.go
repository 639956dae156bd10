package handlers

import (
	"net/http"
	"strconv"

	"collegepath/internal/repository"
)

type UniversityHandler struct {
	universityRepo *repository.UniversityRepository
}

func NewUniversityHandler(universityRepo *repository.UniversityRepository) *UniversityHandler {
	return &UniversityHandler{universityRepo: universityRepo}
}

// SearchUniversities returns catalog entries matching an optional name
// filter. Results are capped server-side.
func (h *UniversityHandler) SearchUniversities(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("q")
	limit := 25
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit", "", nil)
			return
		}
		limit = parsed
	}

	universities, err := h.universityRepo.SearchUniversities(name, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "university search failed", err)
		return
	}

	views := make([]universityView, 0, len(universities))
	for i := range universities {
		views = append(views, toUniversityView(&universities[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

// GetUniversity returns one catalog entry
func (h *UniversityHandler) GetUniversity(w http.ResponseWriter, r *http.Request) {
	universityID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid university ID", "", nil)
		return
	}

	university, err := h.universityRepo.GetUniversityByID(universityID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "university lookup failed", err)
		return
	}
	if university == nil {
		respondWithError(w, http.StatusNotFound, ErrNotFound, "", nil)
		return
	}

	respondJSON(w, http.StatusOK, toUniversityView(university))
}
