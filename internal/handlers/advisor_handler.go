package handlers

import (
	"errors"
	"net/http"

	"collegepath/internal/advisor"
	"collegepath/internal/service"
)

type AdvisorHandler struct {
	advisorService   *service.AdvisorService
	portfolioService *service.PortfolioService
}

func NewAdvisorHandler(advisorService *service.AdvisorService, portfolioService *service.PortfolioService) *AdvisorHandler {
	return &AdvisorHandler{
		advisorService:   advisorService,
		portfolioService: portfolioService,
	}
}

// Status reports whether AI advice is available on this deployment
func (h *AdvisorHandler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{"enabled": h.advisorService.Enabled()})
}

// PortfolioAdvice generates suggestions for strengthening the user's
// application portfolio
func (h *AdvisorHandler) PortfolioAdvice(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	advice, err := h.advisorService.PortfolioAdvice(r.Context(), user.ID)
	if err != nil {
		respondAdvisorError(w, err, "portfolio advice failed")
		return
	}

	respondJSON(w, http.StatusOK, toAdviceView(advice))
}

// CourseSuggestions generates course-selection suggestions for the
// user's next school year
func (h *AdvisorHandler) CourseSuggestions(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	advice, err := h.advisorService.CourseSuggestions(r.Context(), user.ID)
	if err != nil {
		respondAdvisorError(w, err, "course suggestions failed")
		return
	}

	respondJSON(w, http.StatusOK, toAdviceView(advice))
}

// GradeAnalysis generates commentary on the user's grade trends
func (h *AdvisorHandler) GradeAnalysis(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	advice, err := h.advisorService.GradeAnalysis(r.Context(), user.ID)
	if err != nil {
		respondAdvisorError(w, err, "grade analysis failed")
		return
	}

	respondJSON(w, http.StatusOK, toAdviceView(advice))
}

// Chances generates commentary on one target university, grounded in
// the planner's assessment of it
func (h *AdvisorHandler) Chances(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	targetID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid target ID", "", nil)
		return
	}

	advice, err := h.advisorService.Chances(r.Context(), user.ID, targetID)
	if err != nil {
		if errors.Is(err, service.ErrTargetNotFound) ||
			errors.Is(err, service.ErrNotTargetOwner) ||
			errors.Is(err, service.ErrUniversityNotFound) {
			respondServiceError(w, err)
			return
		}
		respondAdvisorError(w, err, "chances commentary failed")
		return
	}

	respondJSON(w, http.StatusOK, toAdviceView(advice))
}

// respondAdvisorError distinguishes a deployment with no advisor
// configured from an upstream generation failure.
func respondAdvisorError(w http.ResponseWriter, err error, logMsg string) {
	if errors.Is(err, advisor.ErrDisabled) {
		respondWithError(w, http.StatusServiceUnavailable, "AI advice is not configured", "", nil)
		return
	}
	respondWithError(w, http.StatusBadGateway, "Advice generation failed", logMsg, err)
}

// EssayFeedback generates feedback on one of the user's essays
func (h *AdvisorHandler) EssayFeedback(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	essayID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid essay ID", "", nil)
		return
	}

	essay, err := h.portfolioService.GetEssay(user.ID, essayID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	advice, err := h.advisorService.EssayFeedback(r.Context(), user.ID, essay)
	if err != nil {
		respondAdvisorError(w, err, "essay feedback failed")
		return
	}

	respondJSON(w, http.StatusOK, toAdviceView(advice))
}
