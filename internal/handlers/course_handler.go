package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"collegepath/internal/models"
	"collegepath/internal/service"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

type courseRequest struct {
	Name    string  `json:"name"`
	Level   string  `json:"level"`
	Year    int     `json:"year"`
	Term    string  `json:"term"`
	Credits float64 `json:"credits"`
}

// ListCourses returns all of the user's courses
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	courses, err := h.courseService.ListCourses(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to list courses", err)
		return
	}

	views := make([]courseView, 0, len(courses))
	for i := range courses {
		views = append(views, toCourseView(&courses[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

// CreateCourse adds a course to the user's schedule
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req courseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	course := &models.Course{
		Name:    strings.TrimSpace(req.Name),
		Level:   models.CourseLevel(req.Level),
		Year:    req.Year,
		Term:    models.Term(req.Term),
		Credits: req.Credits,
	}

	created, err := h.courseService.CreateCourse(user.ID, course)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toCourseView(created))
}

// GetCourse returns a course with its assignments and derived grade
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	courseID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course ID", "", nil)
		return
	}

	detail, err := h.courseService.GetCourse(user.ID, courseID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCourseDetailView(detail))
}

// UpdateCourse updates a course's descriptive fields
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	courseID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course ID", "", nil)
		return
	}

	var req courseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	course := &models.Course{
		ID:      courseID,
		Name:    strings.TrimSpace(req.Name),
		Level:   models.CourseLevel(req.Level),
		Year:    req.Year,
		Term:    models.Term(req.Term),
		Credits: req.Credits,
	}

	if err := h.courseService.UpdateCourse(user.ID, course); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCourseView(course))
}

// DeleteCourse removes a course and everything under it
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	courseID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course ID", "", nil)
		return
	}

	if err := h.courseService.DeleteCourse(user.ID, courseID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type assignmentRequest struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	TotalPoints  float64  `json:"total_points"`
	EarnedPoints *float64 `json:"earned_points"`
	Weight       float64  `json:"weight"`
	Status       string   `json:"status"`
}

// CreateAssignment adds an assignment to a course
func (h *CourseHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	courseID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course ID", "", nil)
		return
	}

	var req assignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	assignment := &models.Assignment{
		CourseID:     courseID,
		Name:         strings.TrimSpace(req.Name),
		Type:         models.AssignmentType(req.Type),
		TotalPoints:  req.TotalPoints,
		EarnedPoints: req.EarnedPoints,
		Weight:       req.Weight,
		Status:       models.AssignmentStatus(req.Status),
	}

	created, err := h.courseService.AddAssignment(user.ID, assignment)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toAssignmentView(created))
}

// UpdateAssignment updates an assignment, recording a grade snapshot
// when the change moves the course grade
func (h *CourseHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	assignmentID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid assignment ID", "", nil)
		return
	}

	var req assignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	assignment := &models.Assignment{
		ID:           assignmentID,
		Name:         strings.TrimSpace(req.Name),
		Type:         models.AssignmentType(req.Type),
		TotalPoints:  req.TotalPoints,
		EarnedPoints: req.EarnedPoints,
		Weight:       req.Weight,
		Status:       models.AssignmentStatus(req.Status),
	}

	if err := h.courseService.UpdateAssignment(user.ID, assignment); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toAssignmentView(assignment))
}

// DeleteAssignment removes an assignment
func (h *CourseHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	assignmentID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid assignment ID", "", nil)
		return
	}

	if err := h.courseService.DeleteAssignment(user.ID, assignmentID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// GradeHistory returns the course's snapshot history, newest first
func (h *CourseHandler) GradeHistory(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	courseID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course ID", "", nil)
		return
	}

	snapshots, err := h.courseService.GetGradeHistory(user.ID, courseID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	views := make([]snapshotView, 0, len(snapshots))
	for i := range snapshots {
		views = append(views, toSnapshotView(&snapshots[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

type finalizeRequest struct {
	OfficialGrade *string `json:"official_grade"`
}

// FinalizeCourse closes out a course with a final snapshot. Finalized
// courses reject further assignment changes.
func (h *CourseHandler) FinalizeCourse(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	courseID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid course ID", "", nil)
		return
	}

	var req finalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	snapshot, err := h.courseService.FinalizeCourse(user.ID, courseID, req.OfficialGrade)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toSnapshotView(snapshot))
}
