package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"collegepath/internal/repository"
	"collegepath/internal/security"
	"collegepath/internal/service"
	"collegepath/internal/validation"
)

type AuthHandler struct {
	authService  *service.AuthService
	emailService *service.EmailService
	userRepo     *repository.UserRepository
	csrf         *security.CSRFGenerator
}

func NewAuthHandler(authService *service.AuthService, emailService *service.EmailService, userRepo *repository.UserRepository, csrf *security.CSRFGenerator) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		emailService: emailService,
		userRepo:     userRepo,
		csrf:         csrf,
	}
}

type registerRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	GraduationYear int    `json:"graduation_year"`
	InviteCode     string `json:"invite_code"`
}

// Register creates a new account and logs it in
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if err := validation.ValidateEmail(req.Email); err != nil {
		respondServiceError(w, err)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		respondServiceError(w, err)
		return
	}
	if err := validation.ValidateName(req.Name); err != nil {
		respondServiceError(w, err)
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.Name, req.GraduationYear, req.InviteCode)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if h.emailService.IsEnabled() {
		go func() {
			if err := h.emailService.SendWelcomeEmail(context.Background(), user.Email, user.Name); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", user.Email, err)
			}
		}()
	}

	session, _, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "post-register login failed", err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, session.ID, session.ExpiresAt))
	respondJSON(w, http.StatusCreated, toUserView(user))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and sets the session cookie
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	session, user, err := h.authService.Login(strings.TrimSpace(strings.ToLower(req.Email)), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "login failed", err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, session.ID, session.ExpiresAt))
	respondJSON(w, http.StatusOK, toUserView(user))
}

// Logout destroys the current session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.authService.Logout(cookie.Value); err != nil {
			log.Printf("Failed to delete session: %v", err)
		}
	}

	http.SetCookie(w, security.CreateDeleteCookie(r, SessionCookieName))
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	respondJSON(w, http.StatusOK, toUserView(user))
}

// CSRFToken issues a token bound to the current session for use in
// the X-CSRF-Token header on state-changing requests
func (h *AuthHandler) CSRFToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	token, err := h.csrf.GenerateToken(cookie.Value)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to generate CSRF token", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"csrf_token": token})
}

type updateProfileRequest struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	GraduationYear int    `json:"graduation_year"`
}

// UpdateProfile updates the authenticated user's profile fields
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if err := validation.ValidateEmail(req.Email); err != nil {
		respondServiceError(w, err)
		return
	}
	if err := validation.ValidateName(req.Name); err != nil {
		respondServiceError(w, err)
		return
	}

	if req.Email != user.Email {
		existing, err := h.userRepo.GetUserByEmail(req.Email)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "email lookup failed", err)
			return
		}
		if existing != nil {
			respondServiceError(w, service.ErrEmailTaken)
			return
		}
	}

	if err := h.userRepo.UpdateUser(user.ID, req.Email, req.Name, req.GraduationYear); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "profile update failed", err)
		return
	}

	updated, err := h.userRepo.GetUserByID(user.ID)
	if err != nil || updated == nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "profile reload failed", err)
		return
	}

	respondJSON(w, http.StatusOK, toUserView(updated))
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword updates the password after verifying the current one
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	if !security.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		respondWithError(w, http.StatusUnauthorized, "Current password is incorrect", "", nil)
		return
	}
	if err := validation.ValidatePassword(req.NewPassword); err != nil {
		respondServiceError(w, err)
		return
	}

	hash, err := security.HashPassword(req.NewPassword)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "password hash failed", err)
		return
	}

	if err := h.userRepo.UpdatePassword(user.ID, hash); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "password update failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "password changed"})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword starts the password reset flow. The response never
// reveals whether the address has an account.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if err := validation.ValidateEmail(email); err != nil {
		respondServiceError(w, err)
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), h.emailService, email); err != nil {
		log.Printf("Password reset request failed for %s: %v", email, err)
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status": "If that email has an account, a reset link has been sent",
	})
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ResetPassword completes the reset flow with a token from email
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	if err := validation.ValidatePassword(req.Password); err != nil {
		respondServiceError(w, err)
		return
	}

	valid, err := h.authService.ValidatePasswordResetToken(req.Token)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "reset token lookup failed", err)
		return
	}
	if !valid {
		respondWithError(w, http.StatusBadRequest, "Invalid or expired reset token", "", nil)
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.Password); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "password reset failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "password reset"})
}
