package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"collegepath/internal/database"
	"collegepath/internal/models"
	"collegepath/internal/planner"
	"collegepath/internal/repository"
	"collegepath/internal/service"
	"collegepath/internal/validation"
)

// invitations are valid for a week
const invitationTTL = 7 * 24 * time.Hour

type AdminHandler struct {
	userRepo           *repository.UserRepository
	invitationRepo     *repository.InvitationRepository
	settingsRepo       *repository.SettingsRepository
	universityRepo     *repository.UniversityRepository
	backupService      *service.BackupService
	emailService       *service.EmailService
	db                 *database.DB
	universityDataPath string
}

func NewAdminHandler(
	userRepo *repository.UserRepository,
	invitationRepo *repository.InvitationRepository,
	settingsRepo *repository.SettingsRepository,
	universityRepo *repository.UniversityRepository,
	backupService *service.BackupService,
	emailService *service.EmailService,
	db *database.DB,
	universityDataPath string,
) *AdminHandler {
	return &AdminHandler{
		userRepo:           userRepo,
		invitationRepo:     invitationRepo,
		settingsRepo:       settingsRepo,
		universityRepo:     universityRepo,
		backupService:      backupService,
		emailService:       emailService,
		db:                 db,
		universityDataPath: universityDataPath,
	}
}

// ListUsers returns every account
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.GetAllUsers()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to list users", err)
		return
	}

	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, toUserView(&users[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

type setAdminRequest struct {
	IsAdmin bool `json:"is_admin"`
}

// SetAdmin grants or revokes admin on an account. Admins cannot revoke
// their own access.
func (h *AdminHandler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	admin := GetUserFromContext(r.Context())
	userID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID", "", nil)
		return
	}

	var req setAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	if userID == admin.ID && !req.IsAdmin {
		respondWithError(w, http.StatusBadRequest, "Cannot revoke your own admin access", "", nil)
		return
	}

	if err := h.userRepo.SetAdmin(userID, req.IsAdmin); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to update admin flag", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteUser removes an account and all of its data
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	admin := GetUserFromContext(r.Context())
	userID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID", "", nil)
		return
	}
	if userID == admin.ID {
		respondWithError(w, http.StatusBadRequest, "Cannot delete your own account", "", nil)
		return
	}

	if err := h.userRepo.DeleteUser(userID); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to delete user", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListInvitations returns all invitations, newest first
func (h *AdminHandler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	invitations, err := h.invitationRepo.GetAllInvitations()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to list invitations", err)
		return
	}

	views := make([]invitationView, 0, len(invitations))
	for i := range invitations {
		views = append(views, toInvitationView(&invitations[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

type createInvitationRequest struct {
	Email string `json:"email"`
}

// CreateInvitation generates an invite code and emails it when email
// sending is configured
func (h *AdminHandler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	admin := GetUserFromContext(r.Context())

	var req createInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if err := validation.ValidateEmail(email); err != nil {
		respondServiceError(w, err)
		return
	}

	invitation, err := h.invitationRepo.CreateInvitation(email, admin.ID, time.Now().Add(invitationTTL))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to create invitation", err)
		return
	}

	if h.emailService.IsEnabled() {
		go h.sendInvitationEmail(invitation, admin.Name)
	}

	respondJSON(w, http.StatusCreated, toInvitationView(invitation))
}

func (h *AdminHandler) sendInvitationEmail(invitation *models.Invitation, inviterName string) {
	subject := "You're invited to CollegePath"
	htmlBody := fmt.Sprintf(
		"<p>%s invited you to join CollegePath, a college planning tool.</p><p>Your invite code: <strong>%s</strong></p><p>This code expires on %s.</p>",
		inviterName, invitation.Code, invitation.ExpiresAt.Format("January 2, 2006"),
	)
	textBody := fmt.Sprintf(
		"%s invited you to join CollegePath.\n\nYour invite code: %s\n\nThis code expires on %s.\n",
		inviterName, invitation.Code, invitation.ExpiresAt.Format("January 2, 2006"),
	)
	if err := h.emailService.SendInvitationEmail(context.Background(), invitation.Email, subject, htmlBody, textBody); err != nil {
		log.Printf("Failed to send invitation email to %s: %v", invitation.Email, err)
	}
}

// DeleteInvitation revokes an invitation
func (h *AdminHandler) DeleteInvitation(w http.ResponseWriter, r *http.Request) {
	invitationID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid invitation ID", "", nil)
		return
	}

	if err := h.invitationRepo.DeleteInvitation(invitationID); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to delete invitation", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// GetSettings returns the admin-visible settings
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"invite_only_mode": h.settingsRepo.IsInviteOnlyMode(),
		"gpa_policy":       service.LoadGPAPolicy(h.settingsRepo),
		"risk_policy":      service.LoadRiskPolicy(h.settingsRepo),
	})
}

type inviteOnlyRequest struct {
	Enabled bool `json:"enabled"`
}

// SetInviteOnlyMode toggles invite-only registration
func (h *AdminHandler) SetInviteOnlyMode(w http.ResponseWriter, r *http.Request) {
	var req inviteOnlyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	if err := h.settingsRepo.SetInviteOnlyMode(req.Enabled); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to update setting", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"invite_only_mode": req.Enabled})
}

// SetGPAPolicy stores an override of the GPA aggregation policy
func (h *AdminHandler) SetGPAPolicy(w http.ResponseWriter, r *http.Request) {
	var policy planner.GPAPolicy
	if err := json.NewDecoder(r.Body).Decode(&policy); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}
	if len(policy.Breakpoints) == 0 {
		respondWithError(w, http.StatusBadRequest, "Policy needs at least one breakpoint", "", nil)
		return
	}

	if err := service.SaveGPAPolicy(h.settingsRepo, policy); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to save GPA policy", err)
		return
	}

	respondJSON(w, http.StatusOK, policy)
}

// SetRiskPolicy stores an override of the risk assessment thresholds
func (h *AdminHandler) SetRiskPolicy(w http.ResponseWriter, r *http.Request) {
	var policy planner.RiskPolicy
	if err := json.NewDecoder(r.Body).Decode(&policy); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}
	if policy.SafetyGPAMargin <= 0 {
		respondWithError(w, http.StatusBadRequest, "SafetyGPAMargin must be positive", "", nil)
		return
	}

	if err := service.SaveRiskPolicy(h.settingsRepo, policy); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to save risk policy", err)
		return
	}

	respondJSON(w, http.StatusOK, policy)
}

type universityRequest struct {
	Name              string   `json:"name"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Control           string   `json:"control"`
	AcceptanceRate    *float64 `json:"acceptance_rate"`
	AvgGPA            *float64 `json:"avg_gpa"`
	SAT25             *float64 `json:"sat_25"`
	SAT75             *float64 `json:"sat_75"`
	ACT25             *float64 `json:"act_25"`
	ACT75             *float64 `json:"act_75"`
	TuitionInState    *float64 `json:"tuition_in_state"`
	TuitionOutOfState *float64 `json:"tuition_out_of_state"`
	Enrollment        *int64   `json:"enrollment"`
	Website           string   `json:"website"`
}

func (req *universityRequest) toModel() *models.University {
	return &models.University{
		Name:              strings.TrimSpace(req.Name),
		City:              strings.TrimSpace(req.City),
		State:             strings.TrimSpace(req.State),
		Control:           strings.TrimSpace(req.Control),
		AcceptanceRate:    req.AcceptanceRate,
		AvgGPA:            req.AvgGPA,
		SAT25:             req.SAT25,
		SAT75:             req.SAT75,
		ACT25:             req.ACT25,
		ACT75:             req.ACT75,
		TuitionInState:    req.TuitionInState,
		TuitionOutOfState: req.TuitionOutOfState,
		Enrollment:        req.Enrollment,
		Website:           strings.TrimSpace(req.Website),
	}
}

// CreateUniversity adds an entry to the shared catalog
func (h *AdminHandler) CreateUniversity(w http.ResponseWriter, r *http.Request) {
	var req universityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	university := req.toModel()
	if err := validation.ValidateName(university.Name); err != nil {
		respondServiceError(w, err)
		return
	}

	created, err := h.universityRepo.CreateUniversity(university)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to create university", err)
		return
	}

	respondJSON(w, http.StatusCreated, toUniversityView(created))
}

// UpdateUniversity updates a catalog entry
func (h *AdminHandler) UpdateUniversity(w http.ResponseWriter, r *http.Request) {
	universityID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid university ID", "", nil)
		return
	}

	var req universityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	university := req.toModel()
	university.ID = universityID
	if err := validation.ValidateName(university.Name); err != nil {
		respondServiceError(w, err)
		return
	}

	if err := h.universityRepo.UpdateUniversity(university); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to update university", err)
		return
	}

	respondJSON(w, http.StatusOK, toUniversityView(university))
}

// DeleteUniversity removes a catalog entry and any targets pointing at it
func (h *AdminHandler) DeleteUniversity(w http.ResponseWriter, r *http.Request) {
	universityID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid university ID", "", nil)
		return
	}

	if err := h.universityRepo.DeleteUniversity(universityID); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to delete university", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ReseedUniversities tops up the catalog from the bundled dataset.
// Entries already present (by name) are left untouched, so admin edits
// survive a reseed.
func (h *AdminHandler) ReseedUniversities(w http.ResponseWriter, r *http.Request) {
	added, err := h.db.ReseedUniversities(h.universityDataPath)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to reseed universities", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"added": added})
}

// ExportBackup streams a full JSON backup of the database
func (h *AdminHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=collegepath-backup-%s.json", time.Now().Format("2006-01-02")))

	if err := h.backupService.ExportToWriter(w); err != nil {
		log.Printf("Backup export failed: %v", err)
	}
}

// ImportBackup restores the database from an uploaded JSON backup.
// Existing rows with the same IDs are replaced.
func (h *AdminHandler) ImportBackup(w http.ResponseWriter, r *http.Request) {
	if err := h.backupService.ImportFromReader(r.Body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Backup import failed", "backup import failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}
