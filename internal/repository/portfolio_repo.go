package repository

import (
	"database/sql"
	"fmt"
	"time"

	"collegepath/internal/database"
	"collegepath/internal/models"
)

// PortfolioRepository handles database operations for the non-academic
// portfolio: extracurriculars, achievements, personality inputs and essays
type PortfolioRepository struct {
	db *database.DB
}

// NewPortfolioRepository creates a new portfolio repository
func NewPortfolioRepository(db *database.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// CreateExtracurricular inserts a new activity for a user
func (r *PortfolioRepository) CreateExtracurricular(e *models.Extracurricular) (*models.Extracurricular, error) {
	query := `
		INSERT INTO extracurriculars (user_id, name, role, category, hours_per_week, weeks_per_year, years, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, e.UserID, e.Name, e.Role, e.Category,
		e.HoursPerWeek, e.WeeksPerYear, e.Years, e.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create extracurricular: %w", err)
	}

	e.ID = id
	e.CreatedAt = time.Now()
	e.UpdatedAt = time.Now()
	return e, nil
}

// GetExtracurricularByID retrieves an activity by ID
func (r *PortfolioRepository) GetExtracurricularByID(id int64) (*models.Extracurricular, error) {
	query := `
		SELECT id, user_id, name, role, category, hours_per_week, weeks_per_year, years, description, created_at, updated_at
		FROM extracurriculars
		WHERE id = ?
	`
	e := &models.Extracurricular{}
	err := r.db.QueryRow(query, id).Scan(
		&e.ID, &e.UserID, &e.Name, &e.Role, &e.Category,
		&e.HoursPerWeek, &e.WeeksPerYear, &e.Years, &e.Description,
		&e.CreatedAt, &e.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get extracurricular: %w", err)
	}

	return e, nil
}

// GetExtracurricularsByUser retrieves all activities for a user
func (r *PortfolioRepository) GetExtracurricularsByUser(userID int64) ([]models.Extracurricular, error) {
	query := `
		SELECT id, user_id, name, role, category, hours_per_week, weeks_per_year, years, description, created_at, updated_at
		FROM extracurriculars
		WHERE user_id = ?
		ORDER BY years DESC, name
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query extracurriculars: %w", err)
	}
	defer rows.Close()

	var activities []models.Extracurricular
	for rows.Next() {
		var e models.Extracurricular
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Name, &e.Role, &e.Category,
			&e.HoursPerWeek, &e.WeeksPerYear, &e.Years, &e.Description,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan extracurricular: %w", err)
		}
		activities = append(activities, e)
	}

	return activities, nil
}

// UpdateExtracurricular updates an activity
func (r *PortfolioRepository) UpdateExtracurricular(e *models.Extracurricular) error {
	query := `
		UPDATE extracurriculars
		SET name = ?, role = ?, category = ?, hours_per_week = ?, weeks_per_year = ?, years = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, e.Name, e.Role, e.Category, e.HoursPerWeek,
		e.WeeksPerYear, e.Years, e.Description, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update extracurricular: %w", err)
	}
	return nil
}

// DeleteExtracurricular deletes an activity
func (r *PortfolioRepository) DeleteExtracurricular(id int64) error {
	_, err := r.db.Exec("DELETE FROM extracurriculars WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete extracurricular: %w", err)
	}
	return nil
}

// CreateAchievement inserts a new achievement for a user
func (r *PortfolioRepository) CreateAchievement(a *models.Achievement) (*models.Achievement, error) {
	query := `
		INSERT INTO achievements (user_id, title, level, year, description)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, a.UserID, a.Title, a.Level, a.Year, a.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}

	a.ID = id
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	return a, nil
}

// GetAchievementByID retrieves an achievement by ID
func (r *PortfolioRepository) GetAchievementByID(id int64) (*models.Achievement, error) {
	query := `
		SELECT id, user_id, title, level, year, description, created_at, updated_at
		FROM achievements
		WHERE id = ?
	`
	a := &models.Achievement{}
	err := r.db.QueryRow(query, id).Scan(
		&a.ID, &a.UserID, &a.Title, &a.Level, &a.Year, &a.Description,
		&a.CreatedAt, &a.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get achievement: %w", err)
	}

	return a, nil
}

// GetAchievementsByUser retrieves all achievements for a user
func (r *PortfolioRepository) GetAchievementsByUser(userID int64) ([]models.Achievement, error) {
	query := `
		SELECT id, user_id, title, level, year, description, created_at, updated_at
		FROM achievements
		WHERE user_id = ?
		ORDER BY year DESC, title
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements: %w", err)
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Title, &a.Level, &a.Year, &a.Description,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}

	return achievements, nil
}

// UpdateAchievement updates an achievement
func (r *PortfolioRepository) UpdateAchievement(a *models.Achievement) error {
	query := `
		UPDATE achievements
		SET title = ?, level = ?, year = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, a.Title, a.Level, a.Year, a.Description, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update achievement: %w", err)
	}
	return nil
}

// DeleteAchievement deletes an achievement
func (r *PortfolioRepository) DeleteAchievement(id int64) error {
	_, err := r.db.Exec("DELETE FROM achievements WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete achievement: %w", err)
	}
	return nil
}

// CreatePersonalityInput inserts a self-description prompt response
func (r *PortfolioRepository) CreatePersonalityInput(p *models.PersonalityInput) (*models.PersonalityInput, error) {
	query := `
		INSERT INTO personality_inputs (user_id, prompt, response)
		VALUES (?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, p.UserID, p.Prompt, p.Response)
	if err != nil {
		return nil, fmt.Errorf("failed to create personality input: %w", err)
	}

	p.ID = id
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	return p, nil
}

// GetPersonalityInputByID retrieves a prompt response by ID
func (r *PortfolioRepository) GetPersonalityInputByID(id int64) (*models.PersonalityInput, error) {
	query := `
		SELECT id, user_id, prompt, response, created_at, updated_at
		FROM personality_inputs
		WHERE id = ?
	`
	p := &models.PersonalityInput{}
	err := r.db.QueryRow(query, id).Scan(
		&p.ID, &p.UserID, &p.Prompt, &p.Response, &p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get personality input: %w", err)
	}

	return p, nil
}

// GetPersonalityInputsByUser retrieves all prompt responses for a user
func (r *PortfolioRepository) GetPersonalityInputsByUser(userID int64) ([]models.PersonalityInput, error) {
	query := `
		SELECT id, user_id, prompt, response, created_at, updated_at
		FROM personality_inputs
		WHERE user_id = ?
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query personality inputs: %w", err)
	}
	defer rows.Close()

	var inputs []models.PersonalityInput
	for rows.Next() {
		var p models.PersonalityInput
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Prompt, &p.Response, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan personality input: %w", err)
		}
		inputs = append(inputs, p)
	}

	return inputs, nil
}

// UpdatePersonalityInput updates a prompt response
func (r *PortfolioRepository) UpdatePersonalityInput(p *models.PersonalityInput) error {
	query := `
		UPDATE personality_inputs
		SET prompt = ?, response = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, p.Prompt, p.Response, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update personality input: %w", err)
	}
	return nil
}

// DeletePersonalityInput deletes a prompt response
func (r *PortfolioRepository) DeletePersonalityInput(id int64) error {
	_, err := r.db.Exec("DELETE FROM personality_inputs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete personality input: %w", err)
	}
	return nil
}

// CreateEssay inserts a new application essay
func (r *PortfolioRepository) CreateEssay(e *models.ApplicationEssay) (*models.ApplicationEssay, error) {
	query := `
		INSERT INTO application_essays (user_id, title, prompt, content, status)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, e.UserID, e.Title, e.Prompt, e.Content, e.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create essay: %w", err)
	}

	e.ID = id
	e.CreatedAt = time.Now()
	e.UpdatedAt = time.Now()
	return e, nil
}

// GetEssayByID retrieves an essay by ID
func (r *PortfolioRepository) GetEssayByID(id int64) (*models.ApplicationEssay, error) {
	query := `
		SELECT id, user_id, title, prompt, content, status, created_at, updated_at
		FROM application_essays
		WHERE id = ?
	`
	e := &models.ApplicationEssay{}
	err := r.db.QueryRow(query, id).Scan(
		&e.ID, &e.UserID, &e.Title, &e.Prompt, &e.Content, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get essay: %w", err)
	}

	return e, nil
}

// GetEssaysByUser retrieves all essays for a user, newest first
func (r *PortfolioRepository) GetEssaysByUser(userID int64) ([]models.ApplicationEssay, error) {
	query := `
		SELECT id, user_id, title, prompt, content, status, created_at, updated_at
		FROM application_essays
		WHERE user_id = ?
		ORDER BY updated_at DESC, id DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query essays: %w", err)
	}
	defer rows.Close()

	var essays []models.ApplicationEssay
	for rows.Next() {
		var e models.ApplicationEssay
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Title, &e.Prompt, &e.Content, &e.Status,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan essay: %w", err)
		}
		essays = append(essays, e)
	}

	return essays, nil
}

// UpdateEssay updates an essay draft
func (r *PortfolioRepository) UpdateEssay(e *models.ApplicationEssay) error {
	query := `
		UPDATE application_essays
		SET title = ?, prompt = ?, content = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, e.Title, e.Prompt, e.Content, e.Status, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update essay: %w", err)
	}
	return nil
}

// DeleteEssay deletes an essay
func (r *PortfolioRepository) DeleteEssay(id int64) error {
	_, err := r.db.Exec("DELETE FROM application_essays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete essay: %w", err)
	}
	return nil
}
