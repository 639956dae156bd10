package handlers

import (
	"net/http"

	"collegepath/internal/service"
)

type TranscriptHandler struct {
	transcriptService *service.TranscriptService
}

func NewTranscriptHandler(transcriptService *service.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{transcriptService: transcriptService}
}

// GetTranscript returns the per-year course timeline with weighted and
// unweighted GPAs. Pass credit_weighted=true to weight the GPA by
// course credits instead of counting each course equally.
func (h *TranscriptHandler) GetTranscript(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	creditWeighted := r.URL.Query().Get("credit_weighted") == "true"

	transcript, err := h.transcriptService.GetTranscript(user.ID, creditWeighted)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to build transcript", err)
		return
	}

	respondJSON(w, http.StatusOK, toTranscriptView(transcript))
}
