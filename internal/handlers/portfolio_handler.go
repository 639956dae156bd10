package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"collegepath/internal/models"
	"collegepath/internal/service"
)

type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// GetPortfolio returns everything on the user's application portfolio
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	portfolio, err := h.portfolioService.GetPortfolio(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to load portfolio", err)
		return
	}

	respondJSON(w, http.StatusOK, toPortfolioView(portfolio))
}

type extracurricularRequest struct {
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Category     string  `json:"category"`
	HoursPerWeek float64 `json:"hours_per_week"`
	WeeksPerYear int     `json:"weeks_per_year"`
	Years        int     `json:"years"`
	Description  string  `json:"description"`
}

func (req *extracurricularRequest) toModel() *models.Extracurricular {
	return &models.Extracurricular{
		Name:         strings.TrimSpace(req.Name),
		Role:         strings.TrimSpace(req.Role),
		Category:     strings.TrimSpace(req.Category),
		HoursPerWeek: req.HoursPerWeek,
		WeeksPerYear: req.WeeksPerYear,
		Years:        req.Years,
		Description:  strings.TrimSpace(req.Description),
	}
}

// CreateExtracurricular adds an activity
func (h *PortfolioHandler) CreateExtracurricular(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req extracurricularRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	created, err := h.portfolioService.CreateExtracurricular(user.ID, req.toModel())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toExtracurricularView(created))
}

// UpdateExtracurricular updates an activity
func (h *PortfolioHandler) UpdateExtracurricular(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid ID", "", nil)
		return
	}

	var req extracurricularRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	entry := req.toModel()
	entry.ID = id
	if err := h.portfolioService.UpdateExtracurricular(user.ID, entry); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toExtracurricularView(entry))
}

// DeleteExtracurricular removes an activity
func (h *PortfolioHandler) DeleteExtracurricular(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid ID", "", nil)
		return
	}

	if err := h.portfolioService.DeleteExtracurricular(user.ID, id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type achievementRequest struct {
	Title       string `json:"title"`
	Level       string `json:"level"`
	Year        int    `json:"year"`
	Description string `json:"description"`
}

func (req *achievementRequest) toModel() *models.Achievement {
	return &models.Achievement{
		Title:       strings.TrimSpace(req.Title),
		Level:       strings.TrimSpace(req.Level),
		Year:        req.Year,
		Description: strings.TrimSpace(req.Description),
	}
}

// CreateAchievement adds an award or honor
func (h *PortfolioHandler) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req achievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	created, err := h.portfolioService.CreateAchievement(user.ID, req.toModel())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toAchievementView(created))
}

// UpdateAchievement updates an award or honor
func (h *PortfolioHandler) UpdateAchievement(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid ID", "", nil)
		return
	}

	var req achievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	entry := req.toModel()
	entry.ID = id
	if err := h.portfolioService.UpdateAchievement(user.ID, entry); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toAchievementView(entry))
}

// DeleteAchievement removes an award or honor
func (h *PortfolioHandler) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid ID", "", nil)
		return
	}

	if err := h.portfolioService.DeleteAchievement(user.ID, id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type personalityInputRequest struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

// CreatePersonalityInput records a self-description prompt response
func (h *PortfolioHandler) CreatePersonalityInput(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req personalityInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	created, err := h.portfolioService.CreatePersonalityInput(user.ID, &models.PersonalityInput{
		Prompt:   strings.TrimSpace(req.Prompt),
		Response: strings.TrimSpace(req.Response),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toPersonalityInputView(created))
}

// UpdatePersonalityInput updates a prompt response
func (h *PortfolioHandler) UpdatePersonalityInput(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid ID", "", nil)
		return
	}

	var req personalityInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	entry := &models.PersonalityInput{
		ID:       id,
		Prompt:   strings.TrimSpace(req.Prompt),
		Response: strings.TrimSpace(req.Response),
	}
	if err := h.portfolioService.UpdatePersonalityInput(user.ID, entry); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toPersonalityInputView(entry))
}

// DeletePersonalityInput removes a prompt response
func (h *PortfolioHandler) DeletePersonalityInput(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid ID", "", nil)
		return
	}

	if err := h.portfolioService.DeletePersonalityInput(user.ID, id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type essayRequest struct {
	Title   string `json:"title"`
	Prompt  string `json:"prompt"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

func (req *essayRequest) toModel() *models.ApplicationEssay {
	return &models.ApplicationEssay{
		Title:   strings.TrimSpace(req.Title),
		Prompt:  strings.TrimSpace(req.Prompt),
		Content: req.Content,
		Status:  models.EssayStatus(req.Status),
	}
}

// CreateEssay starts a new application essay
func (h *PortfolioHandler) CreateEssay(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req essayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	created, err := h.portfolioService.CreateEssay(user.ID, req.toModel())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toEssayView(created))
}

// UpdateEssay updates an essay draft
func (h *PortfolioHandler) UpdateEssay(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid ID", "", nil)
		return
	}

	var req essayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	entry := req.toModel()
	entry.ID = id
	if err := h.portfolioService.UpdateEssay(user.ID, entry); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toEssayView(entry))
}

// DeleteEssay removes an essay
func (h *PortfolioHandler) DeleteEssay(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid ID", "", nil)
		return
	}

	if err := h.portfolioService.DeleteEssay(user.ID, id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
