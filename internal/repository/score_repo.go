package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"collegepath/internal/database"
	"collegepath/internal/models"
)

// ScoreRepository handles database operations for standardized test scores
type ScoreRepository struct {
	db *database.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *database.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Section scores are stored as a JSON object keyed by section name.
func marshalSections(sections map[string]float64) (string, error) {
	if len(sections) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(sections)
	if err != nil {
		return "", fmt.Errorf("failed to marshal section scores: %w", err)
	}
	return string(data), nil
}

func unmarshalSections(data string) (map[string]float64, error) {
	if data == "" {
		return nil, nil
	}
	var sections map[string]float64
	if err := json.Unmarshal([]byte(data), &sections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal section scores: %w", err)
	}
	if len(sections) == 0 {
		return nil, nil
	}
	return sections, nil
}

// CreateScore inserts a new test score for a user
func (r *ScoreRepository) CreateScore(score *models.StandardizedScore) (*models.StandardizedScore, error) {
	sections, err := marshalSections(score.Sections)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO standardized_scores (user_id, type, overall, sections, taken_at)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, score.UserID, score.Type, score.Overall,
		sections, score.TakenAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create score: %w", err)
	}

	score.ID = id
	score.CreatedAt = time.Now()
	return score, nil
}

// GetScoreByID retrieves a score by ID
func (r *ScoreRepository) GetScoreByID(id int64) (*models.StandardizedScore, error) {
	query := `
		SELECT id, user_id, type, overall, sections, taken_at, created_at
		FROM standardized_scores
		WHERE id = ?
	`
	score := &models.StandardizedScore{}
	var sections string
	err := r.db.QueryRow(query, id).Scan(
		&score.ID,
		&score.UserID,
		&score.Type,
		&score.Overall,
		&sections,
		&score.TakenAt,
		&score.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	score.Sections, err = unmarshalSections(sections)
	if err != nil {
		return nil, err
	}

	return score, nil
}

// GetScoresByUser retrieves all test scores for a user, newest sitting first
func (r *ScoreRepository) GetScoresByUser(userID int64) ([]models.StandardizedScore, error) {
	query := `
		SELECT id, user_id, type, overall, sections, taken_at, created_at
		FROM standardized_scores
		WHERE user_id = ?
		ORDER BY taken_at DESC, id DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var scores []models.StandardizedScore
	for rows.Next() {
		var score models.StandardizedScore
		var sections string
		if err := rows.Scan(
			&score.ID,
			&score.UserID,
			&score.Type,
			&score.Overall,
			&sections,
			&score.TakenAt,
			&score.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		score.Sections, err = unmarshalSections(sections)
		if err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}

	return scores, nil
}

// DeleteScore deletes a test score
func (r *ScoreRepository) DeleteScore(id int64) error {
	query := "DELETE FROM standardized_scores WHERE id = ?"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}
	return nil
}
