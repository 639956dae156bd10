package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"collegepath/internal/database"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version      string             `json:"version"`
	ExportedAt   time.Time          `json:"exported_at"`
	DatabaseType string             `json:"database_type"`
	Users        []UserBackup       `json:"users"`
	Courses      []CourseBackup     `json:"courses"`
	Assignments  []AssignmentBackup `json:"assignments"`
	Snapshots    []SnapshotBackup   `json:"grade_snapshots"`
	Scores       []ScoreBackup      `json:"standardized_scores"`
	Universities []UniversityBackup `json:"universities"`
	Targets      []TargetBackup     `json:"university_targets"`
	Activities   []ActivityBackup   `json:"extracurriculars"`
	Achievements []AchievementBkp   `json:"achievements"`
	Personality  []PersonalityBkp   `json:"personality_inputs"`
	Essays       []EssayBackup      `json:"application_essays"`
}

// UserBackup represents a user record for backup
type UserBackup struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"password_hash"`
	Name           string    `json:"name"`
	OAuthProvider  string    `json:"oauth_provider"`
	OAuthSubject   string    `json:"oauth_subject"`
	IsAdmin        bool      `json:"is_admin"`
	GraduationYear int       `json:"graduation_year"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CourseBackup represents a course record for backup
type CourseBackup struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	Year      int       `json:"year"`
	Term      string    `json:"term"`
	Credits   float64   `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AssignmentBackup represents an assignment record for backup
type AssignmentBackup struct {
	ID           int64     `json:"id"`
	CourseID     int64     `json:"course_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	TotalPoints  float64   `json:"total_points"`
	EarnedPoints *float64  `json:"earned_points"`
	Weight       float64   `json:"weight"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SnapshotBackup represents a grade snapshot record for backup
type SnapshotBackup struct {
	ID              int64     `json:"id"`
	CourseID        int64     `json:"course_id"`
	CalculatedGrade float64   `json:"calculated_grade"`
	OfficialGrade   *string   `json:"official_grade"`
	IsFinal         bool      `json:"is_final"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// ScoreBackup represents a test score record for backup
type ScoreBackup struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"type"`
	Overall   float64   `json:"overall"`
	Sections  string    `json:"sections"`
	TakenAt   time.Time `json:"taken_at"`
	CreatedAt time.Time `json:"created_at"`
}

// UniversityBackup represents a university catalog record for backup
type UniversityBackup struct {
	ID                int64    `json:"id"`
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

// TargetBackup represents a university target record for backup
type TargetBackup struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	UniversityID int64      `json:"university_id"`
	Reason       string     `json:"reason"`
	Tier         string     `json:"tier"`
	AssessedAt   *time.Time `json:"assessed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ActivityBackup represents an extracurricular record for backup
type ActivityBackup struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Category     string    `json:"category"`
	HoursPerWeek float64   `json:"hours_per_week"`
	WeeksPerYear int       `json:"weeks_per_year"`
	Years        int       `json:"years"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AchievementBkp represents an achievement record for backup
type AchievementBkp struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Level       string    `json:"level"`
	Year        int       `json:"year"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PersonalityBkp represents a personality input record for backup
type PersonalityBkp struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EssayBackup represents an application essay record for backup
type EssayBackup struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// GetDB returns the database connection for direct queries
func (s *BackupService) GetDB() *database.DB {
	return s.db
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Database exported successfully to %s", outputPath)
	return nil
}

// ExportToWriter exports the database to an io.Writer (useful for HTTP responses)
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup := &BackupData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		DatabaseType: "universal",
	}

	if err := s.exportUsers(backup); err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	if err := s.exportCourses(backup); err != nil {
		return fmt.Errorf("failed to export courses: %w", err)
	}
	if err := s.exportAssignments(backup); err != nil {
		return fmt.Errorf("failed to export assignments: %w", err)
	}
	if err := s.exportSnapshots(backup); err != nil {
		return fmt.Errorf("failed to export grade snapshots: %w", err)
	}
	if err := s.exportScores(backup); err != nil {
		return fmt.Errorf("failed to export scores: %w", err)
	}
	if err := s.exportUniversities(backup); err != nil {
		return fmt.Errorf("failed to export universities: %w", err)
	}
	if err := s.exportTargets(backup); err != nil {
		return fmt.Errorf("failed to export targets: %w", err)
	}
	if err := s.exportPortfolio(backup); err != nil {
		return fmt.Errorf("failed to export portfolio: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Exported: %d users, %d courses, %d assignments, %d snapshots, %d scores, %d universities, %d targets",
		len(backup.Users), len(backup.Courses), len(backup.Assignments),
		len(backup.Snapshots), len(backup.Scores), len(backup.Universities), len(backup.Targets))

	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	log.Printf("Starting database import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup reader (for file uploads)
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// Import in order of dependencies
	if err := s.importUsers(backup.Users); err != nil {
		return fmt.Errorf("failed to import users: %w", err)
	}
	if err := s.importUniversities(backup.Universities); err != nil {
		return fmt.Errorf("failed to import universities: %w", err)
	}
	if err := s.importCourses(backup.Courses); err != nil {
		return fmt.Errorf("failed to import courses: %w", err)
	}
	if err := s.importAssignments(backup.Assignments); err != nil {
		return fmt.Errorf("failed to import assignments: %w", err)
	}
	if err := s.importSnapshots(backup.Snapshots); err != nil {
		return fmt.Errorf("failed to import grade snapshots: %w", err)
	}
	if err := s.importScores(backup.Scores); err != nil {
		return fmt.Errorf("failed to import scores: %w", err)
	}
	if err := s.importTargets(backup.Targets); err != nil {
		return fmt.Errorf("failed to import targets: %w", err)
	}
	if err := s.importPortfolio(&backup); err != nil {
		return fmt.Errorf("failed to import portfolio: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportUsers(backup *BackupData) error {
	query := "SELECT id, email, password_hash, name, COALESCE(oauth_provider, ''), COALESCE(oauth_subject, ''), is_admin, graduation_year, created_at, updated_at FROM users ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u UserBackup
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.OAuthProvider, &u.OAuthSubject, &u.IsAdmin, &u.GraduationYear, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return err
		}
		backup.Users = append(backup.Users, u)
	}
	return rows.Err()
}

func (s *BackupService) exportCourses(backup *BackupData) error {
	query := "SELECT id, user_id, name, level, year, term, credits, created_at, updated_at FROM courses ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c CourseBackup
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Level, &c.Year, &c.Term, &c.Credits, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return err
		}
		backup.Courses = append(backup.Courses, c)
	}
	return rows.Err()
}

func (s *BackupService) exportAssignments(backup *BackupData) error {
	query := "SELECT id, course_id, name, type, total_points, earned_points, weight, status, created_at, updated_at FROM assignments ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a AssignmentBackup
		if err := rows.Scan(&a.ID, &a.CourseID, &a.Name, &a.Type, &a.TotalPoints, &a.EarnedPoints, &a.Weight, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return err
		}
		backup.Assignments = append(backup.Assignments, a)
	}
	return rows.Err()
}

func (s *BackupService) exportSnapshots(backup *BackupData) error {
	query := "SELECT id, course_id, calculated_grade, official_grade, is_final, recorded_at FROM grade_snapshots ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var sn SnapshotBackup
		if err := rows.Scan(&sn.ID, &sn.CourseID, &sn.CalculatedGrade, &sn.OfficialGrade, &sn.IsFinal, &sn.RecordedAt); err != nil {
			return err
		}
		backup.Snapshots = append(backup.Snapshots, sn)
	}
	return rows.Err()
}

func (s *BackupService) exportScores(backup *BackupData) error {
	query := "SELECT id, user_id, type, overall, sections, taken_at, created_at FROM standardized_scores ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var sc ScoreBackup
		if err := rows.Scan(&sc.ID, &sc.UserID, &sc.Type, &sc.Overall, &sc.Sections, &sc.TakenAt, &sc.CreatedAt); err != nil {
			return err
		}
		backup.Scores = append(backup.Scores, sc)
	}
	return rows.Err()
}

func (s *BackupService) exportUniversities(backup *BackupData) error {
	query := "SELECT id, name, city, state, control, acceptance_rate, avg_gpa, sat_25, sat_75, act_25, act_75, tuition_in_state, tuition_out_of_state, enrollment, website FROM universities ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u UniversityBackup
		if err := rows.Scan(&u.ID, &u.Name, &u.City, &u.State, &u.Control, &u.AcceptanceRate, &u.AvgGPA, &u.SAT25, &u.SAT75, &u.ACT25, &u.ACT75, &u.TuitionInState, &u.TuitionOutOfState, &u.Enrollment, &u.Website); err != nil {
			return err
		}
		backup.Universities = append(backup.Universities, u)
	}
	return rows.Err()
}

func (s *BackupService) exportTargets(backup *BackupData) error {
	query := "SELECT id, user_id, university_id, reason, COALESCE(tier, ''), assessed_at, created_at, updated_at FROM university_targets ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t TargetBackup
		if err := rows.Scan(&t.ID, &t.UserID, &t.UniversityID, &t.Reason, &t.Tier, &t.AssessedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return err
		}
		backup.Targets = append(backup.Targets, t)
	}
	return rows.Err()
}

func (s *BackupService) exportPortfolio(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, user_id, name, role, category, hours_per_week, weeks_per_year, years, description, created_at, updated_at FROM extracurriculars ORDER BY id")
	if err != nil {
		return err
	}
	for rows.Next() {
		var a ActivityBackup
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Role, &a.Category, &a.HoursPerWeek, &a.WeeksPerYear, &a.Years, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			rows.Close()
			return err
		}
		backup.Activities = append(backup.Activities, a)
	}
	rows.Close()

	rows, err = s.db.Query("SELECT id, user_id, title, level, year, description, created_at, updated_at FROM achievements ORDER BY id")
	if err != nil {
		return err
	}
	for rows.Next() {
		var a AchievementBkp
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Level, &a.Year, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			rows.Close()
			return err
		}
		backup.Achievements = append(backup.Achievements, a)
	}
	rows.Close()

	rows, err = s.db.Query("SELECT id, user_id, prompt, response, created_at, updated_at FROM personality_inputs ORDER BY id")
	if err != nil {
		return err
	}
	for rows.Next() {
		var p PersonalityBkp
		if err := rows.Scan(&p.ID, &p.UserID, &p.Prompt, &p.Response, &p.CreatedAt, &p.UpdatedAt); err != nil {
			rows.Close()
			return err
		}
		backup.Personality = append(backup.Personality, p)
	}
	rows.Close()

	rows, err = s.db.Query("SELECT id, user_id, title, prompt, content, status, created_at, updated_at FROM application_essays ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var e EssayBackup
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Prompt, &e.Content, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return err
		}
		backup.Essays = append(backup.Essays, e)
	}
	return rows.Err()
}

func (s *BackupService) importUsers(users []UserBackup) error {
	log.Printf("Importing %d users...", len(users))
	for _, u := range users {
		query := "INSERT INTO users (id, email, password_hash, name, oauth_provider, oauth_subject, is_admin, graduation_year, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, u.ID, u.Email, u.PasswordHash, u.Name, nullIfEmpty(u.OAuthProvider), nullIfEmpty(u.OAuthSubject), u.IsAdmin, u.GraduationYear, u.CreatedAt, u.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to import user %d: %w", u.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importUniversities(universities []UniversityBackup) error {
	log.Printf("Importing %d universities...", len(universities))
	for _, u := range universities {
		query := "INSERT INTO universities (id, name, city, state, control, acceptance_rate, avg_gpa, sat_25, sat_75, act_25, act_75, tuition_in_state, tuition_out_of_state, enrollment, website) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, u.ID, u.Name, u.City, u.State, u.Control, u.AcceptanceRate, u.AvgGPA, u.SAT25, u.SAT75, u.ACT25, u.ACT75, u.TuitionInState, u.TuitionOutOfState, u.Enrollment, u.Website)
		if err != nil {
			return fmt.Errorf("failed to import university %d: %w", u.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importCourses(courses []CourseBackup) error {
	log.Printf("Importing %d courses...", len(courses))
	for _, c := range courses {
		query := "INSERT INTO courses (id, user_id, name, level, year, term, credits, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, c.ID, c.UserID, c.Name, c.Level, c.Year, c.Term, c.Credits, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to import course %d: %w", c.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importAssignments(assignments []AssignmentBackup) error {
	log.Printf("Importing %d assignments...", len(assignments))
	for _, a := range assignments {
		query := "INSERT INTO assignments (id, course_id, name, type, total_points, earned_points, weight, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, a.ID, a.CourseID, a.Name, a.Type, a.TotalPoints, a.EarnedPoints, a.Weight, a.Status, a.CreatedAt, a.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to import assignment %d: %w", a.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importSnapshots(snapshots []SnapshotBackup) error {
	log.Printf("Importing %d grade snapshots...", len(snapshots))
	for _, sn := range snapshots {
		query := "INSERT INTO grade_snapshots (id, course_id, calculated_grade, official_grade, is_final, recorded_at) VALUES (?, ?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, sn.ID, sn.CourseID, sn.CalculatedGrade, sn.OfficialGrade, sn.IsFinal, sn.RecordedAt)
		if err != nil {
			return fmt.Errorf("failed to import grade snapshot %d: %w", sn.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importScores(scores []ScoreBackup) error {
	log.Printf("Importing %d scores...", len(scores))
	for _, sc := range scores {
		query := "INSERT INTO standardized_scores (id, user_id, type, overall, sections, taken_at, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, sc.ID, sc.UserID, sc.Type, sc.Overall, sc.Sections, sc.TakenAt, sc.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to import score %d: %w", sc.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importTargets(targets []TargetBackup) error {
	log.Printf("Importing %d targets...", len(targets))
	for _, t := range targets {
		query := "INSERT INTO university_targets (id, user_id, university_id, reason, tier, assessed_at, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, t.ID, t.UserID, t.UniversityID, t.Reason, nullIfEmpty(t.Tier), t.AssessedAt, t.CreatedAt, t.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to import target %d: %w", t.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importPortfolio(backup *BackupData) error {
	log.Printf("Importing portfolio: %d activities, %d achievements, %d inputs, %d essays",
		len(backup.Activities), len(backup.Achievements), len(backup.Personality), len(backup.Essays))

	for _, a := range backup.Activities {
		query := "INSERT INTO extracurriculars (id, user_id, name, role, category, hours_per_week, weeks_per_year, years, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
		if _, err := s.db.Exec(query, a.ID, a.UserID, a.Name, a.Role, a.Category, a.HoursPerWeek, a.WeeksPerYear, a.Years, a.Description, a.CreatedAt, a.UpdatedAt); err != nil {
			return fmt.Errorf("failed to import extracurricular %d: %w", a.ID, err)
		}
	}
	for _, a := range backup.Achievements {
		query := "INSERT INTO achievements (id, user_id, title, level, year, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
		if _, err := s.db.Exec(query, a.ID, a.UserID, a.Title, a.Level, a.Year, a.Description, a.CreatedAt, a.UpdatedAt); err != nil {
			return fmt.Errorf("failed to import achievement %d: %w", a.ID, err)
		}
	}
	for _, p := range backup.Personality {
		query := "INSERT INTO personality_inputs (id, user_id, prompt, response, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)"
		if _, err := s.db.Exec(query, p.ID, p.UserID, p.Prompt, p.Response, p.CreatedAt, p.UpdatedAt); err != nil {
			return fmt.Errorf("failed to import personality input %d: %w", p.ID, err)
		}
	}
	for _, e := range backup.Essays {
		query := "INSERT INTO application_essays (id, user_id, title, prompt, content, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
		if _, err := s.db.Exec(query, e.ID, e.UserID, e.Title, e.Prompt, e.Content, e.Status, e.CreatedAt, e.UpdatedAt); err != nil {
			return fmt.Errorf("failed to import essay %d: %w", e.ID, err)
		}
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
