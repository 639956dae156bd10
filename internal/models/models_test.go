package models

import (
	"testing"
	"time"
)

func TestSessionIsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		expected  bool
	}{
		{
			name:      "future expiry is not expired",
			expiresAt: time.Now().Add(1 * time.Hour),
			expected:  false,
		},
		{
			name:      "past expiry is expired",
			expiresAt: time.Now().Add(-1 * time.Hour),
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := Session{ID: "abc", UserID: 1, ExpiresAt: tt.expiresAt}
			if result := session.IsExpired(); result != tt.expected {
				t.Errorf("IsExpired() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestTermOrder(t *testing.T) {
	tests := []struct {
		term     Term
		expected int
	}{
		{TermFall, 0},
		{TermSpring, 1},
		{TermSummer, 2},
		{TermWinter, 3},
		{Term("trimester"), 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.term), func(t *testing.T) {
			if result := tt.term.Order(); result != tt.expected {
				t.Errorf("Order() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestCourseLevelIsValid(t *testing.T) {
	for _, level := range CourseLevels {
		if !level.IsValid() {
			t.Errorf("level %q should be valid", level)
		}
	}
	if CourseLevel("gifted").IsValid() {
		t.Error("unknown level should not be valid")
	}
}

func TestAssignmentIsGraded(t *testing.T) {
	earned := 88.0
	graded := Assignment{TotalPoints: 100, EarnedPoints: &earned}
	ungraded := Assignment{TotalPoints: 100}

	if !graded.IsGraded() {
		t.Error("assignment with earned points should be graded")
	}
	if ungraded.IsGraded() {
		t.Error("assignment without earned points should not be graded")
	}
}

func TestTestTypeMaxScore(t *testing.T) {
	tests := []struct {
		testType TestType
		expected float64
	}{
		{TestSAT, 1600},
		{TestACT, 36},
		{TestAP, 5},
		{TestIB, 45},
		{TestTOEFL, 120},
		{TestIELTS, 9},
		{TestOther, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.testType), func(t *testing.T) {
			if result := tt.testType.MaxScore(); result != tt.expected {
				t.Errorf("MaxScore() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestUniversityHasAdmissionStats(t *testing.T) {
	gpa := 3.7
	sat25, sat75 := 1200.0, 1400.0

	tests := []struct {
		name       string
		university University
		expected   bool
	}{
		{
			name:       "no stats",
			university: University{Name: "Unknown College"},
			expected:   false,
		},
		{
			name:       "gpa only",
			university: University{AvgGPA: &gpa},
			expected:   true,
		},
		{
			name:       "sat band only",
			university: University{SAT25: &sat25, SAT75: &sat75},
			expected:   true,
		},
		{
			name:       "partial sat band does not count",
			university: University{SAT25: &sat25},
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.university.HasAdmissionStats(); result != tt.expected {
				t.Errorf("HasAdmissionStats() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestEssayWordCount(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{"empty", "", 0},
		{"single word", "hello", 1},
		{"multiple words with extra spaces", "  why   this  school ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			essay := ApplicationEssay{Content: tt.content}
			if result := essay.WordCount(); result != tt.expected {
				t.Errorf("WordCount() = %v, want %v", result, tt.expected)
			}
		})
	}
}
