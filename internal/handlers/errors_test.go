package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"collegepath/internal/service"
	"collegepath/internal/validation"
)

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		userMsg    string
		logMsg     string
		err        error
		wantStatus int
		wantLog    bool
	}{
		{
			name:       "client error without underlying error",
			status:     http.StatusBadRequest,
			userMsg:    "Invalid request body",
			wantStatus: http.StatusBadRequest,
			wantLog:    false,
		},
		{
			name:       "server error logs details",
			status:     http.StatusInternalServerError,
			userMsg:    "Internal server error",
			logMsg:     "failed to load courses",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantLog:    true,
		},
		{
			name:       "log message falls back to user message",
			status:     http.StatusInternalServerError,
			userMsg:    "Internal server error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantLog:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			log.SetOutput(&logBuf)
			defer log.SetOutput(os.Stderr)

			w := httptest.NewRecorder()
			respondWithError(w, tt.status, tt.userMsg, tt.logMsg, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}

			var body errorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not valid JSON: %v", err)
			}
			if body.Error != tt.userMsg {
				t.Errorf("error message = %q, want %q", body.Error, tt.userMsg)
			}

			if tt.wantLog && logBuf.Len() == 0 {
				t.Error("expected log output, got none")
			}
			if !tt.wantLog && logBuf.Len() != 0 {
				t.Errorf("expected no log output, got %q", logBuf.String())
			}
			if tt.wantLog && tt.err != nil && !strings.Contains(logBuf.String(), tt.err.Error()) {
				t.Errorf("log output %q missing error %q", logBuf.String(), tt.err.Error())
			}
		})
	}
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", service.ErrCourseNotFound, http.StatusNotFound},
		{"ownership", service.ErrNotCourseOwner, http.StatusForbidden},
		{"finalized course", service.ErrCourseFinalized, http.StatusConflict},
		{"email taken", service.ErrEmailTaken, http.StatusConflict},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"validation failure", validation.ValidationError{Field: "name", Message: "Name is required"}, http.StatusBadRequest},
		{"wrapped sentinel", errors.New("lookup: " + service.ErrTargetNotFound.Error()), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			log.SetOutput(&logBuf)
			defer log.SetOutput(os.Stderr)

			w := httptest.NewRecorder()
			respondServiceError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
