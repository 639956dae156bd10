package repository

import (
	"database/sql"
	"fmt"
	"time"

	"collegepath/internal/database"
	"collegepath/internal/models"
)

// TargetRepository handles database operations for university targets
type TargetRepository struct {
	db *database.DB
}

// NewTargetRepository creates a new target repository
func NewTargetRepository(db *database.DB) *TargetRepository {
	return &TargetRepository{db: db}
}

// CreateTarget adds a university to a student's target list. The
// (user, university) pair is unique; adding a duplicate fails.
func (r *TargetRepository) CreateTarget(t *models.UniversityTarget) (*models.UniversityTarget, error) {
	query := `
		INSERT INTO university_targets (user_id, university_id, reason)
		VALUES (?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, t.UserID, t.UniversityID, t.Reason)
	if err != nil {
		return nil, fmt.Errorf("failed to create target: %w", err)
	}

	t.ID = id
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
	return t, nil
}

// GetTargetByID retrieves a target by ID
func (r *TargetRepository) GetTargetByID(id int64) (*models.UniversityTarget, error) {
	query := `
		SELECT id, user_id, university_id, reason, COALESCE(tier, ''), assessed_at, created_at, updated_at
		FROM university_targets
		WHERE id = ?
	`
	t := &models.UniversityTarget{}
	err := r.db.QueryRow(query, id).Scan(
		&t.ID,
		&t.UserID,
		&t.UniversityID,
		&t.Reason,
		&t.Tier,
		&t.AssessedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get target: %w", err)
	}

	return t, nil
}

// GetTargetByUserAndUniversity retrieves the unique target for a
// (user, university) pair, if any
func (r *TargetRepository) GetTargetByUserAndUniversity(userID, universityID int64) (*models.UniversityTarget, error) {
	query := `
		SELECT id, user_id, university_id, reason, COALESCE(tier, ''), assessed_at, created_at, updated_at
		FROM university_targets
		WHERE user_id = ? AND university_id = ?
	`
	t := &models.UniversityTarget{}
	err := r.db.QueryRow(query, userID, universityID).Scan(
		&t.ID,
		&t.UserID,
		&t.UniversityID,
		&t.Reason,
		&t.Tier,
		&t.AssessedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get target: %w", err)
	}

	return t, nil
}

// GetTargetsByUser retrieves all targets for a user, oldest first
func (r *TargetRepository) GetTargetsByUser(userID int64) ([]models.UniversityTarget, error) {
	query := `
		SELECT id, user_id, university_id, reason, COALESCE(tier, ''), assessed_at, created_at, updated_at
		FROM university_targets
		WHERE user_id = ?
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query targets: %w", err)
	}
	defer rows.Close()

	var targets []models.UniversityTarget
	for rows.Next() {
		var t models.UniversityTarget
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.UniversityID,
			&t.Reason,
			&t.Tier,
			&t.AssessedAt,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan target: %w", err)
		}
		targets = append(targets, t)
	}

	return targets, nil
}

// UpdateTarget updates a target's reason
func (r *TargetRepository) UpdateTarget(id int64, reason string) error {
	query := `
		UPDATE university_targets
		SET reason = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, reason, id)
	if err != nil {
		return fmt.Errorf("failed to update target: %w", err)
	}
	return nil
}

// UpdateAssessment caches the latest risk tier on a target
func (r *TargetRepository) UpdateAssessment(id int64, tier string) error {
	query := `
		UPDATE university_targets
		SET tier = ?, assessed_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, tier, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update assessment: %w", err)
	}
	return nil
}

// DeleteTarget removes a target from a student's list
func (r *TargetRepository) DeleteTarget(id int64) error {
	query := "DELETE FROM university_targets WHERE id = ?"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete target: %w", err)
	}
	return nil
}
