package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"collegepath/internal/security"
)

func TestCSRFProtect(t *testing.T) {
	csrf := security.NewCSRFGenerator("test-secret")
	m := &Middleware{csrf: csrf}

	sessionID := "test-session"
	token, err := csrf.GenerateToken(sessionID)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	called := false
	handler := m.CSRFProtect(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		method     string
		cookie     bool
		token      string
		wantStatus int
		wantCalled bool
	}{
		{"GET passes without token", http.MethodGet, false, "", http.StatusNoContent, true},
		{"POST with valid token", http.MethodPost, true, token, http.StatusNoContent, true},
		{"POST without token", http.MethodPost, true, "", http.StatusForbidden, false},
		{"POST with wrong token", http.MethodPost, true, "bogus", http.StatusForbidden, false},
		{"POST without session cookie", http.MethodPost, false, token, http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			r := httptest.NewRequest(tt.method, "/api/courses", nil)
			if tt.cookie {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
			}
			if tt.token != "" {
				r.Header.Set(CSRFHeaderName, tt.token)
			}

			w := httptest.NewRecorder()
			handler(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if called != tt.wantCalled {
				t.Errorf("handler called = %v, want %v", called, tt.wantCalled)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	m := &Middleware{limiter: security.NewRateLimiter(2, time.Minute)}

	handler := m.RateLimit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		r.RemoteAddr = "10.0.0.1:12345"
		w := httptest.NewRecorder()
		handler(w, r)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusNoContent || statuses[1] != http.StatusNoContent {
		t.Errorf("first two requests should pass, got %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("third request should be limited, got %d", statuses[2])
	}

	// A different client is unaffected
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	r.RemoteAddr = "10.0.0.2:12345"
	w := httptest.NewRecorder()
	handler(w, r)
	if w.Code != http.StatusNoContent {
		t.Errorf("unrelated client limited, status = %d", w.Code)
	}
}
