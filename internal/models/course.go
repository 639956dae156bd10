package models

import "time"

// CourseLevel is the academic level of a course. Levels above regular
// carry a GPA weighting bonus (see internal/planner).
type CourseLevel string

const (
	LevelRegular        CourseLevel = "regular"
	LevelHonors         CourseLevel = "honors"
	LevelAP             CourseLevel = "ap"
	LevelIB             CourseLevel = "ib"
	LevelDualEnrollment CourseLevel = "dual_enrollment"
)

// CourseLevels lists the valid academic levels
var CourseLevels = []CourseLevel{
	LevelRegular, LevelHonors, LevelAP, LevelIB, LevelDualEnrollment,
}

// IsValid reports whether the level is one of the known academic levels
func (l CourseLevel) IsValid() bool {
	for _, level := range CourseLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Term is an academic term within a school year
type Term string

const (
	TermFall   Term = "fall"
	TermSpring Term = "spring"
	TermSummer Term = "summer"
	TermWinter Term = "winter"
)

// termOrder is the academic-calendar ordering of terms, not alphabetical
var termOrder = map[Term]int{
	TermFall:   0,
	TermSpring: 1,
	TermSummer: 2,
	TermWinter: 3,
}

// Order returns the academic-calendar position of the term.
// Unknown terms sort last.
func (t Term) Order() int {
	if order, ok := termOrder[t]; ok {
		return order
	}
	return len(termOrder)
}

// IsValid reports whether the term is one of the known terms
func (t Term) IsValid() bool {
	_, ok := termOrder[t]
	return ok
}

// Course represents a single course on a student's schedule.
// A course's percentage grade is derived from its assignments and is
// undefined (not zero) until at least one assignment is graded.
type Course struct {
	ID        int64
	UserID    int64
	Name      string
	Level     CourseLevel
	Year      int // grade level, 9-12
	Term      Term
	Credits   float64 // defaults to 1
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AssignmentType is the closed set of assignment categories
type AssignmentType string

const (
	AssignmentHomework      AssignmentType = "homework"
	AssignmentQuiz          AssignmentType = "quiz"
	AssignmentTest          AssignmentType = "test"
	AssignmentProject       AssignmentType = "project"
	AssignmentLab           AssignmentType = "lab"
	AssignmentParticipation AssignmentType = "participation"
	AssignmentFinalExam     AssignmentType = "final_exam"
	AssignmentMidterm       AssignmentType = "midterm"
	AssignmentOther         AssignmentType = "other"
)

// AssignmentTypes lists the valid assignment categories
var AssignmentTypes = []AssignmentType{
	AssignmentHomework, AssignmentQuiz, AssignmentTest, AssignmentProject,
	AssignmentLab, AssignmentParticipation, AssignmentFinalExam,
	AssignmentMidterm, AssignmentOther,
}

// IsValid reports whether the type is one of the known categories
func (t AssignmentType) IsValid() bool {
	for _, at := range AssignmentTypes {
		if t == at {
			return true
		}
	}
	return false
}

// AssignmentStatus tracks an assignment through its lifecycle
type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "pending"
	StatusSubmitted AssignmentStatus = "submitted"
	StatusGraded    AssignmentStatus = "graded"
	StatusLate      AssignmentStatus = "late"
	StatusMissing   AssignmentStatus = "missing"
)

// AssignmentStatuses lists the valid assignment statuses
var AssignmentStatuses = []AssignmentStatus{
	StatusPending, StatusSubmitted, StatusGraded, StatusLate, StatusMissing,
}

// IsValid reports whether the status is one of the known statuses
func (s AssignmentStatus) IsValid() bool {
	for _, status := range AssignmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Assignment represents a single piece of graded work in a course.
// EarnedPoints is nil until the assignment is graded; ungraded work
// never counts toward the course grade. EarnedPoints may exceed
// TotalPoints (extra credit).
type Assignment struct {
	ID           int64
	CourseID     int64
	Name         string
	Type         AssignmentType
	TotalPoints  float64
	EarnedPoints *float64
	Weight       float64 // percentage weight relative to other assignments, 0-100
	Status       AssignmentStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsGraded reports whether the assignment has an earned score
func (a *Assignment) IsGraded() bool {
	return a.EarnedPoints != nil
}

// GradeSnapshot is an append-only history entry capturing a course's
// derived grade at a point in time, optionally alongside the official
// report-card grade. Snapshots are never mutated, only superseded.
type GradeSnapshot struct {
	ID              int64
	CourseID        int64
	CalculatedGrade float64
	OfficialGrade   *string
	IsFinal         bool
	RecordedAt      time.Time
}
