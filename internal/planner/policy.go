// Package planner contains the grade, GPA, and admissions-risk
// computations behind the planning features. Every function here is a
// pure, synchronous transformation over in-memory records: no I/O, no
// shared state, safe to call concurrently.
//
// Results that may not be computable (a course with no graded work, a
// GPA over zero courses) are reported through an explicit Defined flag.
// They are never coerced to zero: "no grade yet" and "a grade of zero"
// are different answers.
package planner

import "collegepath/internal/models"

// GradeBreakpoint maps a minimum percentage to an unweighted GPA point
// value. Breakpoints are evaluated in descending order of MinPercent.
type GradeBreakpoint struct {
	MinPercent float64
	Points     float64
}

// GPAPolicy configures how course grades aggregate into a GPA.
// Schools differ on breakpoints, level bonuses, clamping, and credit
// weighting, so none of these are hardcoded.
type GPAPolicy struct {
	// Breakpoints in descending MinPercent order; a grade below every
	// breakpoint earns 0 points.
	Breakpoints []GradeBreakpoint

	// LevelBonuses added on top of the unweighted point per course level.
	// Levels absent from the map get no bonus.
	LevelBonuses map[models.CourseLevel]float64

	// Cap clamps the weighted per-course point when set. Nil means no
	// clamp: an AP course at 95% can contribute 5.0.
	Cap *float64

	// CreditWeighted makes each course contribute proportional to its
	// credit value. Off by default: every course counts equally.
	CreditWeighted bool
}

// DefaultGPAPolicy returns the conventional 4.0-scale policy: 90/80/70/60
// breakpoints, +1.0 for AP, IB, and dual enrollment, +0.5 for honors,
// no cap, no credit weighting.
func DefaultGPAPolicy() GPAPolicy {
	return GPAPolicy{
		Breakpoints: []GradeBreakpoint{
			{MinPercent: 90, Points: 4.0},
			{MinPercent: 80, Points: 3.0},
			{MinPercent: 70, Points: 2.0},
			{MinPercent: 60, Points: 1.0},
		},
		LevelBonuses: map[models.CourseLevel]float64{
			models.LevelAP:             1.0,
			models.LevelIB:             1.0,
			models.LevelDualEnrollment: 1.0,
			models.LevelHonors:         0.5,
		},
	}
}

// RiskPolicy configures the margins and thresholds for university risk
// assessment. The defaults are a reasonable convention, not a rule;
// counselors tune these.
type RiskPolicy struct {
	// SafetyGPAMargin is how far above the average admitted GPA a
	// student must sit for the GPA component to read as safety.
	SafetyGPAMargin float64

	// TargetGPAMargin is the band around the average admitted GPA that
	// reads as target.
	TargetGPAMargin float64

	// ReachGPAMargin is how far below the target band still reads as
	// reach before dropping to high reach.
	ReachGPAMargin float64

	// EliteAcceptanceFloor forces high reach for any university whose
	// acceptance rate is below it, regardless of the student's profile.
	EliteAcceptanceFloor float64

	// Acceptance-rate-only bands, used when a university publishes no
	// GPA or test statistics.
	FallbackHighReachRate float64
	FallbackReachRate     float64
	FallbackTargetRate    float64
}

// DefaultRiskPolicy returns the default assessment thresholds.
func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{
		SafetyGPAMargin:       0.3,
		TargetGPAMargin:       0.2,
		ReachGPAMargin:        0.5,
		EliteAcceptanceFloor:  0.10,
		FallbackHighReachRate: 0.10,
		FallbackReachRate:     0.25,
		FallbackTargetRate:    0.50,
	}
}
