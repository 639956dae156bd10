package planner

import (
	"collegepath/internal/models"
	"collegepath/internal/validation"
)

// Grade is a derived course percentage. Defined is false when the course
// has no graded work; callers must treat that as "no grade yet", never
// as zero.
type Grade struct {
	Percent float64
	Defined bool
}

// CourseGrade reduces a course's assignments to a single weighted
// percentage grade.
//
// Only graded assignments participate; ungraded work is excluded
// entirely rather than counted as zero. Per-assignment scores are not
// clamped, so extra credit above 100% is preserved. The result is
// undefined when no assignment is graded or the graded weights sum to
// zero.
//
// A non-positive total, a negative weight, or a negative earned score
// is a contract violation by the caller and fails fast.
func CourseGrade(assignments []models.Assignment) (Grade, error) {
	var weightedSum, weightTotal float64

	for i := range assignments {
		a := &assignments[i]
		if a.TotalPoints <= 0 {
			return Grade{}, validation.ValidationError{Field: "total_points", Message: "total points must be positive"}
		}
		if a.Weight < 0 {
			return Grade{}, validation.ValidationError{Field: "weight", Message: "weight cannot be negative"}
		}
		if a.EarnedPoints == nil {
			continue
		}
		if *a.EarnedPoints < 0 {
			return Grade{}, validation.ValidationError{Field: "earned_points", Message: "earned points cannot be negative"}
		}

		score := *a.EarnedPoints / a.TotalPoints * 100
		weightedSum += score * a.Weight
		weightTotal += a.Weight
	}

	if weightTotal == 0 {
		return Grade{}, nil
	}

	return Grade{Percent: weightedSum / weightTotal, Defined: true}, nil
}
