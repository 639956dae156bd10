package repository

import (
	"database/sql"
	"fmt"
	"time"

	"collegepath/internal/database"
	"collegepath/internal/models"
)

// CourseRepository handles database operations for courses, assignments
// and grade snapshots
type CourseRepository struct {
	db *database.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *database.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// CreateCourse inserts a new course for a user
func (r *CourseRepository) CreateCourse(course *models.Course) (*models.Course, error) {
	query := `
		INSERT INTO courses (user_id, name, level, year, term, credits)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, course.UserID, course.Name, course.Level,
		course.Year, course.Term, course.Credits)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	course.ID = id
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	return course, nil
}

// GetCourseByID retrieves a course by ID
func (r *CourseRepository) GetCourseByID(id int64) (*models.Course, error) {
	query := `
		SELECT id, user_id, name, level, year, term, credits, created_at, updated_at
		FROM courses
		WHERE id = ?
	`
	course := &models.Course{}
	err := r.db.QueryRow(query, id).Scan(
		&course.ID,
		&course.UserID,
		&course.Name,
		&course.Level,
		&course.Year,
		&course.Term,
		&course.Credits,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return course, nil
}

// GetCoursesByUser retrieves all courses for a user, ordered for the
// transcript view
func (r *CourseRepository) GetCoursesByUser(userID int64) ([]models.Course, error) {
	query := `
		SELECT id, user_id, name, level, year, term, credits, created_at, updated_at
		FROM courses
		WHERE user_id = ?
		ORDER BY year, name
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.UserID,
			&course.Name,
			&course.Level,
			&course.Year,
			&course.Term,
			&course.Credits,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// UpdateCourse updates a course's details
func (r *CourseRepository) UpdateCourse(course *models.Course) error {
	query := `
		UPDATE courses
		SET name = ?, level = ?, year = ?, term = ?, credits = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, course.Name, course.Level, course.Year, course.Term,
		course.Credits, course.ID)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

// DeleteCourse deletes a course and its assignments and snapshots
func (r *CourseRepository) DeleteCourse(id int64) error {
	query := "DELETE FROM courses WHERE id = ?"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}

// CreateAssignment inserts a new assignment for a course
func (r *CourseRepository) CreateAssignment(a *models.Assignment) (*models.Assignment, error) {
	query := `
		INSERT INTO assignments (course_id, name, type, total_points, earned_points, weight, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, a.CourseID, a.Name, a.Type,
		a.TotalPoints, a.EarnedPoints, a.Weight, a.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	a.ID = id
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	return a, nil
}

// GetAssignmentByID retrieves an assignment by ID
func (r *CourseRepository) GetAssignmentByID(id int64) (*models.Assignment, error) {
	query := `
		SELECT id, course_id, name, type, total_points, earned_points, weight, status, created_at, updated_at
		FROM assignments
		WHERE id = ?
	`
	a := &models.Assignment{}
	err := r.db.QueryRow(query, id).Scan(
		&a.ID,
		&a.CourseID,
		&a.Name,
		&a.Type,
		&a.TotalPoints,
		&a.EarnedPoints,
		&a.Weight,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return a, nil
}

// GetAssignmentsByCourse retrieves all assignments for a course
func (r *CourseRepository) GetAssignmentsByCourse(courseID int64) ([]models.Assignment, error) {
	query := `
		SELECT id, course_id, name, type, total_points, earned_points, weight, status, created_at, updated_at
		FROM assignments
		WHERE course_id = ?
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(
			&a.ID,
			&a.CourseID,
			&a.Name,
			&a.Type,
			&a.TotalPoints,
			&a.EarnedPoints,
			&a.Weight,
			&a.Status,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// UpdateAssignment updates an assignment's details and grade
func (r *CourseRepository) UpdateAssignment(a *models.Assignment) error {
	query := `
		UPDATE assignments
		SET name = ?, type = ?, total_points = ?, earned_points = ?, weight = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, a.Name, a.Type, a.TotalPoints, a.EarnedPoints,
		a.Weight, a.Status, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return nil
}

// DeleteAssignment deletes an assignment
func (r *CourseRepository) DeleteAssignment(id int64) error {
	query := "DELETE FROM assignments WHERE id = ?"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// CreateSnapshot appends a grade snapshot for a course. Snapshots are
// append-only; existing rows are never updated.
func (r *CourseRepository) CreateSnapshot(s *models.GradeSnapshot) (*models.GradeSnapshot, error) {
	query := `
		INSERT INTO grade_snapshots (course_id, calculated_grade, official_grade, is_final)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, s.CourseID, s.CalculatedGrade, s.OfficialGrade, s.IsFinal)
	if err != nil {
		return nil, fmt.Errorf("failed to create grade snapshot: %w", err)
	}

	s.ID = id
	s.RecordedAt = time.Now()
	return s, nil
}

// GetSnapshotsByCourse retrieves the grade history for a course, newest first
func (r *CourseRepository) GetSnapshotsByCourse(courseID int64) ([]models.GradeSnapshot, error) {
	query := `
		SELECT id, course_id, calculated_grade, official_grade, is_final, recorded_at
		FROM grade_snapshots
		WHERE course_id = ?
		ORDER BY recorded_at DESC, id DESC
	`
	rows, err := r.db.Query(query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query grade snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []models.GradeSnapshot
	for rows.Next() {
		var s models.GradeSnapshot
		if err := rows.Scan(
			&s.ID,
			&s.CourseID,
			&s.CalculatedGrade,
			&s.OfficialGrade,
			&s.IsFinal,
			&s.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan grade snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, nil
}

// HasFinalSnapshot reports whether a course has been finalized
func (r *CourseRepository) HasFinalSnapshot(courseID int64) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM grade_snapshots WHERE course_id = ? AND is_final = ?"
	err := r.db.QueryRow(query, courseID, true).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check final snapshot: %w", err)
	}
	return count > 0, nil
}
