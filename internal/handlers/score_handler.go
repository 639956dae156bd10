package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"collegepath/internal/models"
	"collegepath/internal/service"
)

type ScoreHandler struct {
	scoreService *service.ScoreService
}

func NewScoreHandler(scoreService *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// ListScores returns all of the user's test scores, newest sitting first
func (h *ScoreHandler) ListScores(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	scores, err := h.scoreService.ListScores(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to list scores", err)
		return
	}

	views := make([]scoreView, 0, len(scores))
	for i := range scores {
		views = append(views, toScoreView(&scores[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

type scoreRequest struct {
	Type     string             `json:"type"`
	Overall  float64            `json:"overall"`
	Sections map[string]float64 `json:"sections"`
	TakenAt  string             `json:"taken_at"` // YYYY-MM-DD
}

// CreateScore records a new test sitting
func (h *ScoreHandler) CreateScore(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	takenAt := time.Now()
	if req.TakenAt != "" {
		parsed, err := time.Parse("2006-01-02", req.TakenAt)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "taken_at must be YYYY-MM-DD", "", nil)
			return
		}
		takenAt = parsed
	}

	score := &models.StandardizedScore{
		Type:     models.TestType(req.Type),
		Overall:  req.Overall,
		Sections: req.Sections,
		TakenAt:  takenAt,
	}

	created, err := h.scoreService.CreateScore(user.ID, score)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toScoreView(created))
}

// DeleteScore removes a test score
func (h *ScoreHandler) DeleteScore(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	scoreID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid score ID", "", nil)
		return
	}

	if err := h.scoreService.DeleteScore(user.ID, scoreID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// BestScores returns the highest overall score per test type
func (h *ScoreHandler) BestScores(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	best, err := h.scoreService.BestScores(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to compute best scores", err)
		return
	}

	payload := make(map[string]float64, len(best))
	for testType, overall := range best {
		payload[string(testType)] = overall
	}
	respondJSON(w, http.StatusOK, payload)
}
