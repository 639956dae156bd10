package service

import (
	"errors"
	"fmt"

	"collegepath/internal/models"
	"collegepath/internal/planner"
	"collegepath/internal/repository"
	"collegepath/internal/validation"
)

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrNotCourseOwner     = errors.New("course does not belong to user")
	ErrCourseFinalized    = errors.New("course grade has been finalized")
	ErrGradeUndefined     = errors.New("course has no graded work yet")
)

// CourseService handles course and assignment business logic. Grade
// changes append snapshots to the course's grade history.
type CourseService struct {
	courseRepo *repository.CourseRepository
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// CourseDetail bundles a course with its assignments and derived grade
type CourseDetail struct {
	Course      models.Course
	Assignments []models.Assignment
	Grade       planner.Grade
	Finalized   bool
}

// CreateCourse adds a course to a student's schedule
func (s *CourseService) CreateCourse(userID int64, course *models.Course) (*models.Course, error) {
	course.UserID = userID
	if course.Credits == 0 {
		course.Credits = 1
	}
	if err := validation.ValidateCourse(course); err != nil {
		return nil, err
	}
	return s.courseRepo.CreateCourse(course)
}

// GetCourse retrieves a course with assignments and derived grade
func (s *CourseService) GetCourse(userID, courseID int64) (*CourseDetail, error) {
	course, err := s.ownedCourse(userID, courseID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.courseRepo.GetAssignmentsByCourse(courseID)
	if err != nil {
		return nil, err
	}

	grade, err := planner.CourseGrade(assignments)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate grade: %w", err)
	}

	finalized, err := s.courseRepo.HasFinalSnapshot(courseID)
	if err != nil {
		return nil, err
	}

	return &CourseDetail{
		Course:      *course,
		Assignments: assignments,
		Grade:       grade,
		Finalized:   finalized,
	}, nil
}

// ListCourses retrieves all of a student's courses
func (s *CourseService) ListCourses(userID int64) ([]models.Course, error) {
	return s.courseRepo.GetCoursesByUser(userID)
}

// UpdateCourse updates a course's details
func (s *CourseService) UpdateCourse(userID int64, course *models.Course) error {
	existing, err := s.ownedCourse(userID, course.ID)
	if err != nil {
		return err
	}

	course.UserID = existing.UserID
	if course.Credits == 0 {
		course.Credits = 1
	}
	if err := validation.ValidateCourse(course); err != nil {
		return err
	}
	return s.courseRepo.UpdateCourse(course)
}

// DeleteCourse removes a course and its assignments and history
func (s *CourseService) DeleteCourse(userID, courseID int64) error {
	if _, err := s.ownedCourse(userID, courseID); err != nil {
		return err
	}
	return s.courseRepo.DeleteCourse(courseID)
}

// AddAssignment adds an assignment to a course. Grading it (earned
// points set) records a new grade snapshot.
func (s *CourseService) AddAssignment(userID int64, a *models.Assignment) (*models.Assignment, error) {
	if err := s.mutableCourse(userID, a.CourseID); err != nil {
		return nil, err
	}

	if a.Status == "" {
		a.Status = models.StatusPending
	}
	if a.IsGraded() && a.Status == models.StatusPending {
		a.Status = models.StatusGraded
	}
	if err := validation.ValidateAssignment(a); err != nil {
		return nil, err
	}

	created, err := s.courseRepo.CreateAssignment(a)
	if err != nil {
		return nil, err
	}

	if created.IsGraded() {
		if err := s.recordSnapshot(created.CourseID); err != nil {
			return nil, err
		}
	}

	return created, nil
}

// UpdateAssignment updates an assignment. Changes that affect the
// course grade record a new snapshot.
func (s *CourseService) UpdateAssignment(userID int64, a *models.Assignment) error {
	existing, err := s.courseRepo.GetAssignmentByID(a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAssignmentNotFound
	}
	if err := s.mutableCourse(userID, existing.CourseID); err != nil {
		return err
	}

	a.CourseID = existing.CourseID
	if a.Status == "" {
		a.Status = existing.Status
	}
	if a.IsGraded() && a.Status == models.StatusPending {
		a.Status = models.StatusGraded
	}
	if err := validation.ValidateAssignment(a); err != nil {
		return err
	}

	if err := s.courseRepo.UpdateAssignment(a); err != nil {
		return err
	}

	if gradeChanged(existing, a) {
		return s.recordSnapshot(a.CourseID)
	}
	return nil
}

// DeleteAssignment removes an assignment. Removing graded work records
// a new snapshot since the course grade changes.
func (s *CourseService) DeleteAssignment(userID, assignmentID int64) error {
	existing, err := s.courseRepo.GetAssignmentByID(assignmentID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAssignmentNotFound
	}
	if err := s.mutableCourse(userID, existing.CourseID); err != nil {
		return err
	}

	if err := s.courseRepo.DeleteAssignment(assignmentID); err != nil {
		return err
	}

	if existing.IsGraded() {
		return s.recordSnapshot(existing.CourseID)
	}
	return nil
}

// GetGradeHistory retrieves the snapshot history for a course
func (s *CourseService) GetGradeHistory(userID, courseID int64) ([]models.GradeSnapshot, error) {
	if _, err := s.ownedCourse(userID, courseID); err != nil {
		return nil, err
	}
	return s.courseRepo.GetSnapshotsByCourse(courseID)
}

// FinalizeCourse records the final grade snapshot for a completed
// course, optionally alongside the official report-card grade. A
// finalized course no longer accepts assignment changes.
func (s *CourseService) FinalizeCourse(userID, courseID int64, officialGrade *string) (*models.GradeSnapshot, error) {
	if err := s.mutableCourse(userID, courseID); err != nil {
		return nil, err
	}

	assignments, err := s.courseRepo.GetAssignmentsByCourse(courseID)
	if err != nil {
		return nil, err
	}

	grade, err := planner.CourseGrade(assignments)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate grade: %w", err)
	}
	if !grade.Defined {
		return nil, ErrGradeUndefined
	}

	snapshot := &models.GradeSnapshot{
		CourseID:        courseID,
		CalculatedGrade: grade.Percent,
		OfficialGrade:   officialGrade,
		IsFinal:         true,
	}
	return s.courseRepo.CreateSnapshot(snapshot)
}

// GradedCourses derives the grade for each of a student's courses, for
// use by the transcript and assessment services
func (s *CourseService) GradedCourses(userID int64) ([]planner.GradedCourse, error) {
	courses, err := s.courseRepo.GetCoursesByUser(userID)
	if err != nil {
		return nil, err
	}

	graded := make([]planner.GradedCourse, 0, len(courses))
	for _, course := range courses {
		assignments, err := s.courseRepo.GetAssignmentsByCourse(course.ID)
		if err != nil {
			return nil, err
		}
		grade, err := planner.CourseGrade(assignments)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate grade for course %d: %w", course.ID, err)
		}
		graded = append(graded, planner.GradedCourse{Course: course, Grade: grade})
	}

	return graded, nil
}

// ownedCourse loads a course and verifies ownership
func (s *CourseService) ownedCourse(userID, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	if course.UserID != userID {
		return nil, ErrNotCourseOwner
	}
	return course, nil
}

// mutableCourse verifies ownership and that the course is not finalized
func (s *CourseService) mutableCourse(userID, courseID int64) error {
	if _, err := s.ownedCourse(userID, courseID); err != nil {
		return err
	}
	finalized, err := s.courseRepo.HasFinalSnapshot(courseID)
	if err != nil {
		return err
	}
	if finalized {
		return ErrCourseFinalized
	}
	return nil
}

// recordSnapshot appends the current derived grade to the course's
// history. Undefined grades are not recorded.
func (s *CourseService) recordSnapshot(courseID int64) error {
	assignments, err := s.courseRepo.GetAssignmentsByCourse(courseID)
	if err != nil {
		return err
	}

	grade, err := planner.CourseGrade(assignments)
	if err != nil {
		return fmt.Errorf("failed to calculate grade: %w", err)
	}
	if !grade.Defined {
		return nil
	}

	_, err = s.courseRepo.CreateSnapshot(&models.GradeSnapshot{
		CourseID:        courseID,
		CalculatedGrade: grade.Percent,
	})
	return err
}

// gradeChanged reports whether an assignment update affects the course grade
func gradeChanged(before, after *models.Assignment) bool {
	if before.TotalPoints != after.TotalPoints || before.Weight != after.Weight {
		return true
	}
	if (before.EarnedPoints == nil) != (after.EarnedPoints == nil) {
		return true
	}
	if before.EarnedPoints != nil && after.EarnedPoints != nil && *before.EarnedPoints != *after.EarnedPoints {
		return true
	}
	return false
}
