package planner

import (
	"testing"

	"collegepath/internal/models"
)

func university(acceptance, avgGPA, sat25, sat75 *float64) models.University {
	return models.University{
		Name:           "State University",
		AcceptanceRate: acceptance,
		AvgGPA:         avgGPA,
		SAT25:          sat25,
		SAT75:          sat75,
	}
}

func TestClassifySafety(t *testing.T) {
	// Profile strictly above the 75th band and average GPA + margin
	u := university(ptr(0.55), ptr(3.5), ptr(1150), ptr(1350))
	profile := Profile{GPA: 3.9, GPADefined: true, SAT: ptr(1450)}

	assessment := Classify(profile, u, DefaultRiskPolicy())

	if assessment.Tier != TierSafety {
		t.Errorf("tier = %v, want safety", assessment.Tier)
	}
	if assessment.TestBand != TestAbove75 {
		t.Errorf("test band = %v, want above_75th", assessment.TestBand)
	}
	if assessment.GPADelta == nil || *assessment.GPADelta < 0.3 {
		t.Errorf("GPA delta = %v, want >= safety margin", assessment.GPADelta)
	}
	if assessment.EliteOverride || assessment.StatsFallback {
		t.Error("no override or fallback expected")
	}
}

func TestClassifyTarget(t *testing.T) {
	u := university(ptr(0.40), ptr(3.7), ptr(1200), ptr(1400))
	profile := Profile{GPA: 3.65, GPADefined: true, SAT: ptr(1300)}

	assessment := Classify(profile, u, DefaultRiskPolicy())

	if assessment.Tier != TierTarget {
		t.Errorf("tier = %v, want target", assessment.Tier)
	}
	if assessment.TestBand != TestInRange {
		t.Errorf("test band = %v, want in_range", assessment.TestBand)
	}
}

func TestClassifyRiskierComponentWins(t *testing.T) {
	// GPA reads safety, test reads reach: reach wins
	u := university(ptr(0.40), ptr(3.2), ptr(1300), ptr(1480))
	profile := Profile{GPA: 3.9, GPADefined: true, SAT: ptr(1200)}

	assessment := Classify(profile, u, DefaultRiskPolicy())

	if assessment.Tier != TierReach {
		t.Errorf("tier = %v, want reach (riskier component must win)", assessment.Tier)
	}
}

func TestClassifyHighReachOnWeakGPA(t *testing.T) {
	u := university(ptr(0.40), ptr(3.9), nil, nil)
	profile := Profile{GPA: 3.0, GPADefined: true}

	assessment := Classify(profile, u, DefaultRiskPolicy())

	if assessment.Tier != TierHighReach {
		t.Errorf("tier = %v, want high_reach", assessment.Tier)
	}
}

func TestClassifyEliteOverride(t *testing.T) {
	// Student above every published band, but acceptance rate below the
	// floor: selectivity caps the best achievable tier at high reach
	u := university(ptr(0.04), ptr(3.9), ptr(1470), ptr(1570))
	profile := Profile{GPA: 4.3, GPADefined: true, SAT: ptr(1600)}

	assessment := Classify(profile, u, DefaultRiskPolicy())

	if assessment.Tier != TierHighReach {
		t.Errorf("tier = %v, want high_reach (elite override)", assessment.Tier)
	}
	if !assessment.EliteOverride {
		t.Error("EliteOverride should be set")
	}
}

func TestClassifyACTFallsBackWhenNoSATBand(t *testing.T) {
	u := models.University{
		Name:           "Midwest College",
		AcceptanceRate: ptr(0.60),
		ACT25:          ptr(22.0),
		ACT75:          ptr(28.0),
	}
	profile := Profile{GPA: 3.5, GPADefined: true, ACT: ptr(30.0)}

	assessment := Classify(profile, u, DefaultRiskPolicy())

	if assessment.TestBand != TestAbove75 {
		t.Errorf("test band = %v, want above_75th from ACT comparison", assessment.TestBand)
	}
	if assessment.Tier != TierSafety {
		t.Errorf("tier = %v, want safety", assessment.Tier)
	}
}

func TestClassifyMissingStatsFallback(t *testing.T) {
	policy := DefaultRiskPolicy()

	tests := []struct {
		name       string
		acceptance *float64
		expected   RiskTier
	}{
		{"very selective", ptr(0.08), TierHighReach},
		{"selective", ptr(0.20), TierReach},
		{"moderate", ptr(0.45), TierTarget},
		{"open", ptr(0.75), TierSafety},
		{"no data at all", nil, TierTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := university(tt.acceptance, nil, nil, nil)
			profile := Profile{GPA: 3.8, GPADefined: true, SAT: ptr(1400)}

			assessment := Classify(profile, u, policy)

			if !assessment.StatsFallback {
				t.Error("StatsFallback should be set when the university has no profile stats")
			}
			if assessment.Tier != tt.expected {
				t.Errorf("tier = %v, want %v", assessment.Tier, tt.expected)
			}
		})
	}
}

func TestClassifyUndefinedGPAUsesTestOnly(t *testing.T) {
	u := university(ptr(0.50), ptr(3.6), ptr(1200), ptr(1400))
	profile := Profile{SAT: ptr(1300)}

	assessment := Classify(profile, u, DefaultRiskPolicy())

	if assessment.GPADelta != nil {
		t.Error("GPA delta should be nil when the student GPA is undefined")
	}
	if assessment.Tier != TierTarget {
		t.Errorf("tier = %v, want target from test comparison alone", assessment.Tier)
	}
}
