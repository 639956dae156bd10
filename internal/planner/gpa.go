package planner

import "collegepath/internal/models"

// GradedCourse pairs a course with its derived grade
type GradedCourse struct {
	Course models.Course
	Grade  Grade
}

// CoursePoints maps one course's percentage grade to its weighted GPA
// point under the policy: breakpoint table value plus level bonus,
// clamped only when the policy sets a cap. The second return is false
// when the course grade is undefined.
func CoursePoints(gc GradedCourse, policy GPAPolicy) (float64, bool) {
	if !gc.Grade.Defined {
		return 0, false
	}

	points := 0.0
	for _, bp := range policy.Breakpoints {
		if gc.Grade.Percent >= bp.MinPercent {
			points = bp.Points
			break
		}
	}

	points += policy.LevelBonuses[gc.Course.Level]

	if policy.Cap != nil && points > *policy.Cap {
		points = *policy.Cap
	}

	return points, true
}

// GPA aggregates course grades into a single GPA value under the policy.
//
// Courses with an undefined grade are excluded entirely; they do not
// drag the GPA toward zero. The mean is unweighted unless the policy
// enables credit weighting. The second return is false when no course
// has a defined grade.
func GPA(courses []GradedCourse, policy GPAPolicy) (float64, bool) {
	var pointSum, weightSum float64

	for _, gc := range courses {
		points, ok := CoursePoints(gc, policy)
		if !ok {
			continue
		}

		weight := 1.0
		if policy.CreditWeighted {
			weight = gc.Course.Credits
			if weight <= 0 {
				weight = 1
			}
		}

		pointSum += points * weight
		weightSum += weight
	}

	if weightSum == 0 {
		return 0, false
	}

	return pointSum / weightSum, true
}
