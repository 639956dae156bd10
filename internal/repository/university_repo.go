package repository

import (
	"database/sql"
	"fmt"

	"collegepath/internal/database"
	"collegepath/internal/models"
)

// UniversityRepository handles database operations for the shared
// university catalog
type UniversityRepository struct {
	db *database.DB
}

// NewUniversityRepository creates a new university repository
func NewUniversityRepository(db *database.DB) *UniversityRepository {
	return &UniversityRepository{db: db}
}

const universityColumns = `id, name, city, state, control, acceptance_rate, avg_gpa,
	sat_25, sat_75, act_25, act_75, tuition_in_state, tuition_out_of_state, enrollment, website`

func scanUniversity(scan func(dest ...interface{}) error) (*models.University, error) {
	u := &models.University{}
	err := scan(
		&u.ID,
		&u.Name,
		&u.City,
		&u.State,
		&u.Control,
		&u.AcceptanceRate,
		&u.AvgGPA,
		&u.SAT25,
		&u.SAT75,
		&u.ACT25,
		&u.ACT75,
		&u.TuitionInState,
		&u.TuitionOutOfState,
		&u.Enrollment,
		&u.Website,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUniversity inserts a new university into the catalog
func (r *UniversityRepository) CreateUniversity(u *models.University) (*models.University, error) {
	query := `
		INSERT INTO universities
		(name, city, state, control, acceptance_rate, avg_gpa,
		 sat_25, sat_75, act_25, act_75, tuition_in_state, tuition_out_of_state, enrollment, website)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, u.Name, u.City, u.State, u.Control,
		u.AcceptanceRate, u.AvgGPA, u.SAT25, u.SAT75, u.ACT25, u.ACT75,
		u.TuitionInState, u.TuitionOutOfState, u.Enrollment, u.Website)
	if err != nil {
		return nil, fmt.Errorf("failed to create university: %w", err)
	}

	u.ID = id
	return u, nil
}

// GetUniversityByID retrieves a university by ID
func (r *UniversityRepository) GetUniversityByID(id int64) (*models.University, error) {
	query := "SELECT " + universityColumns + " FROM universities WHERE id = ?"
	u, err := scanUniversity(r.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get university: %w", err)
	}
	return u, nil
}

// SearchUniversities retrieves universities matching an optional name
// filter, ordered alphabetically
func (r *UniversityRepository) SearchUniversities(nameFilter string, limit int) ([]models.University, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	query := "SELECT " + universityColumns + " FROM universities"
	args := []interface{}{}
	if nameFilter != "" {
		query += " WHERE LOWER(name) LIKE LOWER(?)"
		args = append(args, "%"+nameFilter+"%")
	}
	query += " ORDER BY name LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query universities: %w", err)
	}
	defer rows.Close()

	var universities []models.University
	for rows.Next() {
		u, err := scanUniversity(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan university: %w", err)
		}
		universities = append(universities, *u)
	}

	return universities, nil
}

// UpdateUniversity updates a university's catalog entry
func (r *UniversityRepository) UpdateUniversity(u *models.University) error {
	query := `
		UPDATE universities
		SET name = ?, city = ?, state = ?, control = ?, acceptance_rate = ?, avg_gpa = ?,
		    sat_25 = ?, sat_75 = ?, act_25 = ?, act_75 = ?,
		    tuition_in_state = ?, tuition_out_of_state = ?, enrollment = ?, website = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, u.Name, u.City, u.State, u.Control,
		u.AcceptanceRate, u.AvgGPA, u.SAT25, u.SAT75, u.ACT25, u.ACT75,
		u.TuitionInState, u.TuitionOutOfState, u.Enrollment, u.Website, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update university: %w", err)
	}
	return nil
}

// DeleteUniversity removes a university from the catalog
func (r *UniversityRepository) DeleteUniversity(id int64) error {
	query := "DELETE FROM universities WHERE id = ?"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete university: %w", err)
	}
	return nil
}

// CountUniversities returns the catalog size
func (r *UniversityRepository) CountUniversities() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM universities").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count universities: %w", err)
	}
	return count, nil
}
