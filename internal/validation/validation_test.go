package validation

import (
	"testing"

	"collegepath/internal/models"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "student@example.com", false},
		{"valid with plus", "student+apps@example.com", false},
		{"empty", "", true},
		{"missing domain", "student@", true},
		{"missing at", "student.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid password", "correcthorse", false},
		{"empty", "", true},
		{"too short", "short", true},
		{"exactly 8 chars", "12345678", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCourse(t *testing.T) {
	valid := models.Course{
		Name:    "AP Calculus BC",
		Level:   models.LevelAP,
		Year:    11,
		Term:    models.TermFall,
		Credits: 1,
	}

	tests := []struct {
		name    string
		mutate  func(c *models.Course)
		wantErr bool
	}{
		{"valid course", func(c *models.Course) {}, false},
		{"empty name", func(c *models.Course) { c.Name = "" }, true},
		{"unknown level", func(c *models.Course) { c.Level = "gifted" }, true},
		{"unknown term", func(c *models.Course) { c.Term = "trimester" }, true},
		{"year below range", func(c *models.Course) { c.Year = 8 }, true},
		{"year above range", func(c *models.Course) { c.Year = 13 }, true},
		{"zero credits", func(c *models.Course) { c.Credits = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := valid
			tt.mutate(&course)
			err := ValidateCourse(&course)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCourse() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAssignment(t *testing.T) {
	earned := 88.0
	negative := -1.0
	valid := models.Assignment{
		Name:         "Unit 3 Test",
		Type:         models.AssignmentTest,
		TotalPoints:  100,
		EarnedPoints: &earned,
		Weight:       60,
		Status:       models.StatusGraded,
	}

	tests := []struct {
		name    string
		mutate  func(a *models.Assignment)
		wantErr bool
	}{
		{"valid assignment", func(a *models.Assignment) {}, false},
		{"ungraded is valid", func(a *models.Assignment) { a.EarnedPoints = nil; a.Status = models.StatusPending }, false},
		{"zero total points", func(a *models.Assignment) { a.TotalPoints = 0 }, true},
		{"negative weight", func(a *models.Assignment) { a.Weight = -5 }, true},
		{"weight above 100", func(a *models.Assignment) { a.Weight = 101 }, true},
		{"negative earned points", func(a *models.Assignment) { a.EarnedPoints = &negative }, true},
		{"unknown type", func(a *models.Assignment) { a.Type = "presentation" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment := valid
			tt.mutate(&assignment)
			err := ValidateAssignment(&assignment)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssignment() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateScore(t *testing.T) {
	tests := []struct {
		name    string
		score   models.StandardizedScore
		wantErr bool
	}{
		{"valid sat", models.StandardizedScore{Type: models.TestSAT, Overall: 1480}, false},
		{"sat above scale", models.StandardizedScore{Type: models.TestSAT, Overall: 1700}, true},
		{"valid act", models.StandardizedScore{Type: models.TestACT, Overall: 33}, false},
		{"negative score", models.StandardizedScore{Type: models.TestACT, Overall: -1}, true},
		{"other has no scale cap", models.StandardizedScore{Type: models.TestOther, Overall: 9000}, false},
		{"unknown type", models.StandardizedScore{Type: "psat", Overall: 1400}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScore(&tt.score)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScore() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
