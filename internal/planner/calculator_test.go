package planner

import (
	"math"
	"testing"

	"collegepath/internal/models"
)

func ptr(v float64) *float64 { return &v }

func graded(earned, total, weight float64) models.Assignment {
	return models.Assignment{
		Name:         "work",
		Type:         models.AssignmentHomework,
		TotalPoints:  total,
		EarnedPoints: ptr(earned),
		Weight:       weight,
		Status:       models.StatusGraded,
	}
}

func ungraded(total, weight float64) models.Assignment {
	return models.Assignment{
		Name:        "work",
		Type:        models.AssignmentHomework,
		TotalPoints: total,
		Weight:      weight,
		Status:      models.StatusPending,
	}
}

func TestCourseGradeUndefinedCases(t *testing.T) {
	tests := []struct {
		name        string
		assignments []models.Assignment
	}{
		{"no assignments", nil},
		{"only ungraded assignments", []models.Assignment{ungraded(100, 50), ungraded(100, 50)}},
		{"graded but zero weights", []models.Assignment{graded(90, 100, 0), graded(80, 100, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grade, err := CourseGrade(tt.assignments)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if grade.Defined {
				t.Errorf("grade should be undefined, got %v", grade.Percent)
			}
		})
	}
}

func TestCourseGradeSingleAssignment(t *testing.T) {
	grade, err := CourseGrade([]models.Assignment{graded(90, 100, 25)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !grade.Defined {
		t.Fatal("grade should be defined")
	}
	if grade.Percent != 90.0 {
		t.Errorf("grade = %v, want 90.0", grade.Percent)
	}
}

func TestCourseGradeWeightedMean(t *testing.T) {
	tests := []struct {
		name        string
		assignments []models.Assignment
		expected    float64
	}{
		{
			name:        "equal weights average evenly",
			assignments: []models.Assignment{graded(100, 100, 50), graded(0, 100, 50)},
			expected:    50.0,
		},
		{
			name:        "weights skew the mean",
			assignments: []models.Assignment{graded(88, 100, 60), graded(95, 100, 40)},
			expected:    90.8,
		},
		{
			name:        "ungraded work is excluded, not zero",
			assignments: []models.Assignment{graded(90, 100, 50), ungraded(100, 50)},
			expected:    90.0,
		},
		{
			name:        "fractional total points",
			assignments: []models.Assignment{graded(9, 10, 100)},
			expected:    90.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grade, err := CourseGrade(tt.assignments)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !grade.Defined {
				t.Fatal("grade should be defined")
			}
			if math.Abs(grade.Percent-tt.expected) > 1e-9 {
				t.Errorf("grade = %v, want %v", grade.Percent, tt.expected)
			}
		})
	}
}

func TestCourseGradeExtraCredit(t *testing.T) {
	// 110% and 100% weighted evenly: the mean must exceed 100
	grade, err := CourseGrade([]models.Assignment{graded(110, 100, 50), graded(100, 100, 50)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(grade.Percent-105.0) > 1e-9 {
		t.Errorf("grade = %v, want 105.0 (extra credit must not be clamped)", grade.Percent)
	}
}

func TestCourseGradeContractViolations(t *testing.T) {
	tests := []struct {
		name        string
		assignments []models.Assignment
	}{
		{"zero total points", []models.Assignment{graded(50, 0, 50)}},
		{"negative total points", []models.Assignment{graded(50, -10, 50)}},
		{"negative weight", []models.Assignment{graded(50, 100, -1)}},
		{"negative earned points", []models.Assignment{graded(-5, 100, 50)}},
		{"ungraded with bad total still fails", []models.Assignment{ungraded(0, 50)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CourseGrade(tt.assignments); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
