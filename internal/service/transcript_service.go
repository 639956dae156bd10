package service

import (
	"collegepath/internal/planner"
	"collegepath/internal/repository"
)

// TranscriptService derives the transcript view: per-year course
// timeline plus cumulative GPA under the configured policy.
type TranscriptService struct {
	courseService *CourseService
	settingsRepo  *repository.SettingsRepository
}

// NewTranscriptService creates a new transcript service
func NewTranscriptService(courseService *CourseService, settingsRepo *repository.SettingsRepository) *TranscriptService {
	return &TranscriptService{
		courseService: courseService,
		settingsRepo:  settingsRepo,
	}
}

// Transcript is the full derived academic record for a student
type Transcript struct {
	Years []planner.YearSummary

	// Weighted GPA includes level bonuses; unweighted strips them.
	WeightedGPA          float64
	WeightedGPADefined   bool
	UnweightedGPA        float64
	UnweightedGPADefined bool

	CreditWeighted bool
}

// GetTranscript builds the transcript for a student. creditWeighted
// selects credit-hour weighting for the cumulative GPAs; the per-year
// summaries always use the stored policy's weighting.
func (s *TranscriptService) GetTranscript(userID int64, creditWeighted bool) (*Transcript, error) {
	graded, err := s.courseService.GradedCourses(userID)
	if err != nil {
		return nil, err
	}

	policy := LoadGPAPolicy(s.settingsRepo)
	policy.CreditWeighted = creditWeighted

	weighted, weightedOK := planner.GPA(graded, policy)

	unweightedPolicy := policy
	unweightedPolicy.LevelBonuses = nil
	unweighted, unweightedOK := planner.GPA(graded, unweightedPolicy)

	return &Transcript{
		Years:                planner.GroupByYear(graded, policy),
		WeightedGPA:          weighted,
		WeightedGPADefined:   weightedOK,
		UnweightedGPA:        unweighted,
		UnweightedGPADefined: unweightedOK,
		CreditWeighted:       creditWeighted,
	}, nil
}
