package planner

import "collegepath/internal/models"

// RiskTier is an advisory classification of how likely a university is
// to admit a student, from most to least likely. It is an estimate for
// planning conversations, never a prediction or a guarantee.
type RiskTier string

const (
	TierSafety    RiskTier = "safety"
	TierTarget    RiskTier = "target"
	TierReach     RiskTier = "reach"
	TierHighReach RiskTier = "high_reach"
)

// tierRank orders tiers from least to most risky
var tierRank = map[RiskTier]int{
	TierSafety:    0,
	TierTarget:    1,
	TierReach:     2,
	TierHighReach: 3,
}

func riskier(a, b RiskTier) RiskTier {
	if tierRank[a] >= tierRank[b] {
		return a
	}
	return b
}

// TestBand places a student's test score relative to a university's
// admitted 25th-75th percentile range.
type TestBand string

const (
	TestAbove75 TestBand = "above_75th"
	TestInRange TestBand = "in_range"
	TestBelow25 TestBand = "below_25th"
	TestUnknown TestBand = "unknown"
)

// Profile is the slice of a student's academic record used for
// admissions comparison.
type Profile struct {
	GPA        float64
	GPADefined bool
	SAT        *float64
	ACT        *float64
}

// Assessment is the advisory output of a risk classification. It always
// carries the component comparisons that produced the tier so callers
// can surface the reasoning, never just the label.
type Assessment struct {
	Tier RiskTier

	// GPADelta is student GPA minus average admitted GPA, nil when
	// either side is unavailable.
	GPADelta *float64

	// TestBand is where the student's score sits in the admitted range.
	TestBand TestBand

	// AcceptanceRate echoes the university's published rate when known.
	AcceptanceRate *float64

	// EliteOverride is true when the acceptance-rate floor forced the
	// tier to high reach regardless of the profile comparison.
	EliteOverride bool

	// StatsFallback is true when the university published no profile
	// statistics and the tier came from acceptance-rate banding alone.
	StatsFallback bool
}

// Classify buckets a university into a risk tier by comparing the
// student's profile against the university's published admitted-student
// statistics.
//
// The GPA and test comparisons are assessed independently and the
// riskier of the two wins; a missing component is simply ignored. When
// the university publishes no usable statistics at all, the tier falls
// back to acceptance-rate banding rather than erroring. A sub-floor
// acceptance rate forces high reach no matter how strong the profile;
// selectivity is a hard ceiling on the best achievable tier.
func Classify(profile Profile, university models.University, policy RiskPolicy) Assessment {
	assessment := Assessment{
		TestBand:       TestUnknown,
		AcceptanceRate: university.AcceptanceRate,
	}

	gpaTier, gpaKnown := classifyGPA(&assessment, profile, university, policy)
	testTier, testKnown := classifyTest(&assessment, profile, university)

	switch {
	case gpaKnown && testKnown:
		assessment.Tier = riskier(gpaTier, testTier)
	case gpaKnown:
		assessment.Tier = gpaTier
	case testKnown:
		assessment.Tier = testTier
	default:
		assessment.StatsFallback = true
		assessment.Tier = acceptanceRateTier(university.AcceptanceRate, policy)
	}

	if university.AcceptanceRate != nil && *university.AcceptanceRate < policy.EliteAcceptanceFloor {
		assessment.Tier = TierHighReach
		assessment.EliteOverride = true
	}

	return assessment
}

func classifyGPA(assessment *Assessment, profile Profile, university models.University, policy RiskPolicy) (RiskTier, bool) {
	if !profile.GPADefined || university.AvgGPA == nil {
		return "", false
	}

	delta := profile.GPA - *university.AvgGPA
	assessment.GPADelta = &delta

	switch {
	case delta >= policy.SafetyGPAMargin:
		return TierSafety, true
	case delta >= -policy.TargetGPAMargin:
		return TierTarget, true
	case delta >= -(policy.TargetGPAMargin + policy.ReachGPAMargin):
		return TierReach, true
	default:
		return TierHighReach, true
	}
}

func classifyTest(assessment *Assessment, profile Profile, university models.University) (RiskTier, bool) {
	var score float64
	var low, high *float64

	switch {
	case profile.SAT != nil && university.SAT25 != nil && university.SAT75 != nil:
		score, low, high = *profile.SAT, university.SAT25, university.SAT75
	case profile.ACT != nil && university.ACT25 != nil && university.ACT75 != nil:
		score, low, high = *profile.ACT, university.ACT25, university.ACT75
	default:
		return "", false
	}

	switch {
	case score >= *high:
		assessment.TestBand = TestAbove75
		return TierSafety, true
	case score >= *low:
		assessment.TestBand = TestInRange
		return TierTarget, true
	default:
		assessment.TestBand = TestBelow25
		return TierReach, true
	}
}

// acceptanceRateTier bands a university on selectivity alone, for
// universities that publish no admitted-student statistics. A missing
// acceptance rate reads as target: there is nothing to compare against
// in either direction.
func acceptanceRateTier(rate *float64, policy RiskPolicy) RiskTier {
	if rate == nil {
		return TierTarget
	}
	switch {
	case *rate < policy.FallbackHighReachRate:
		return TierHighReach
	case *rate < policy.FallbackReachRate:
		return TierReach
	case *rate < policy.FallbackTargetRate:
		return TierTarget
	default:
		return TierSafety
	}
}
