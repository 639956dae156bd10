package planner

import (
	"math"
	"testing"

	"collegepath/internal/models"
)

func course(name string, level models.CourseLevel, credits float64) models.Course {
	return models.Course{Name: name, Level: level, Year: 11, Term: models.TermFall, Credits: credits}
}

func TestCoursePointsBreakpoints(t *testing.T) {
	policy := DefaultGPAPolicy()

	tests := []struct {
		name     string
		percent  float64
		level    models.CourseLevel
		expected float64
	}{
		{"regular 95 maps to 4.0 with no bonus", 95, models.LevelRegular, 4.0},
		{"regular exactly 90", 90, models.LevelRegular, 4.0},
		{"regular 85", 85, models.LevelRegular, 3.0},
		{"regular 72", 72, models.LevelRegular, 2.0},
		{"regular 65", 65, models.LevelRegular, 1.0},
		{"regular 59 earns zero", 59, models.LevelRegular, 0.0},
		{"ap 95 earns table value plus bonus", 95, models.LevelAP, 5.0},
		{"ib 95 earns table value plus bonus", 95, models.LevelIB, 5.0},
		{"dual enrollment bonus", 95, models.LevelDualEnrollment, 5.0},
		{"honors half bonus", 95, models.LevelHonors, 4.5},
		{"extra credit above 100 still maps to top breakpoint", 104, models.LevelRegular, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gc := GradedCourse{
				Course: course("Course", tt.level, 1),
				Grade:  Grade{Percent: tt.percent, Defined: true},
			}
			points, ok := CoursePoints(gc, policy)
			if !ok {
				t.Fatal("points should be defined")
			}
			if points != tt.expected {
				t.Errorf("CoursePoints() = %v, want %v", points, tt.expected)
			}
		})
	}
}

func TestCoursePointsUndefinedGrade(t *testing.T) {
	gc := GradedCourse{Course: course("New Course", models.LevelAP, 1)}
	if _, ok := CoursePoints(gc, DefaultGPAPolicy()); ok {
		t.Error("undefined grade should not produce points")
	}
}

func TestCoursePointsCap(t *testing.T) {
	cap := 4.0
	policy := DefaultGPAPolicy()
	policy.Cap = &cap

	gc := GradedCourse{
		Course: course("AP Physics", models.LevelAP, 1),
		Grade:  Grade{Percent: 97, Defined: true},
	}
	points, ok := CoursePoints(gc, policy)
	if !ok {
		t.Fatal("points should be defined")
	}
	if points != 4.0 {
		t.Errorf("capped points = %v, want 4.0", points)
	}
}

func TestGPAExcludesUndefinedCourses(t *testing.T) {
	// One course at 4.0 plus one with no graded work: GPA is 4.0, not 2.0
	courses := []GradedCourse{
		{Course: course("English", models.LevelRegular, 1), Grade: Grade{Percent: 95, Defined: true}},
		{Course: course("New Elective", models.LevelRegular, 1)},
	}

	gpa, ok := GPA(courses, DefaultGPAPolicy())
	if !ok {
		t.Fatal("GPA should be defined")
	}
	if gpa != 4.0 {
		t.Errorf("GPA = %v, want 4.0", gpa)
	}
}

func TestGPAUndefinedWhenNoGrades(t *testing.T) {
	courses := []GradedCourse{
		{Course: course("A", models.LevelRegular, 1)},
		{Course: course("B", models.LevelAP, 1)},
	}
	if _, ok := GPA(courses, DefaultGPAPolicy()); ok {
		t.Error("GPA over zero defined grades should be undefined")
	}
}

func TestGPAUnweightedMeanByDefault(t *testing.T) {
	// 4.0 over 1 credit and 3.0 over 2 credits: unweighted mean is 3.5
	courses := []GradedCourse{
		{Course: course("Seminar", models.LevelRegular, 1), Grade: Grade{Percent: 95, Defined: true}},
		{Course: course("Biology", models.LevelRegular, 2), Grade: Grade{Percent: 85, Defined: true}},
	}

	gpa, ok := GPA(courses, DefaultGPAPolicy())
	if !ok {
		t.Fatal("GPA should be defined")
	}
	if gpa != 3.5 {
		t.Errorf("GPA = %v, want 3.5 (credits must not weight by default)", gpa)
	}
}

func TestGPACreditWeighted(t *testing.T) {
	policy := DefaultGPAPolicy()
	policy.CreditWeighted = true

	// (4.0*1 + 3.0*2) / 3 = 10/3
	courses := []GradedCourse{
		{Course: course("Seminar", models.LevelRegular, 1), Grade: Grade{Percent: 95, Defined: true}},
		{Course: course("Biology", models.LevelRegular, 2), Grade: Grade{Percent: 85, Defined: true}},
	}

	gpa, ok := GPA(courses, policy)
	if !ok {
		t.Fatal("GPA should be defined")
	}
	if math.Abs(gpa-10.0/3.0) > 1e-9 {
		t.Errorf("GPA = %v, want %v", gpa, 10.0/3.0)
	}
}

func TestGPAEndToEndAPCalc(t *testing.T) {
	// AP Calc BC with Test A (88/100, weight 60) and Quiz B (95/100,
	// weight 40): grade 90.8, unweighted point 4.0, +1.0 AP bonus,
	// sole course so overall GPA is 5.0.
	assignments := []models.Assignment{
		graded(88, 100, 60),
		graded(95, 100, 40),
	}

	grade, err := CourseGrade(assignments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(grade.Percent-90.8) > 1e-9 {
		t.Fatalf("course grade = %v, want 90.8", grade.Percent)
	}

	gpa, ok := GPA([]GradedCourse{
		{Course: course("AP Calc BC", models.LevelAP, 1), Grade: grade},
	}, DefaultGPAPolicy())
	if !ok {
		t.Fatal("GPA should be defined")
	}
	if gpa != 5.0 {
		t.Errorf("GPA = %v, want 5.0", gpa)
	}
}
