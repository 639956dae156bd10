package service

import (
	"errors"

	"collegepath/internal/models"
	"collegepath/internal/planner"
	"collegepath/internal/repository"
)

var (
	ErrTargetNotFound     = errors.New("target not found")
	ErrNotTargetOwner     = errors.New("target does not belong to user")
	ErrUniversityNotFound = errors.New("university not found")
	ErrTargetExists       = errors.New("university already on target list")
)

// TargetService handles the student's target university list and the
// risk assessment of each target against their academic profile.
type TargetService struct {
	targetRepo     *repository.TargetRepository
	universityRepo *repository.UniversityRepository
	courseService  *CourseService
	scoreService   *ScoreService
	settingsRepo   *repository.SettingsRepository
}

// NewTargetService creates a new target service
func NewTargetService(targetRepo *repository.TargetRepository, universityRepo *repository.UniversityRepository, courseService *CourseService, scoreService *ScoreService, settingsRepo *repository.SettingsRepository) *TargetService {
	return &TargetService{
		targetRepo:     targetRepo,
		universityRepo: universityRepo,
		courseService:  courseService,
		scoreService:   scoreService,
		settingsRepo:   settingsRepo,
	}
}

// TargetDetail bundles a target with its university and latest assessment
type TargetDetail struct {
	Target     models.UniversityTarget
	University models.University
	Assessment *planner.Assessment
}

// AddTarget puts a university on a student's target list
func (s *TargetService) AddTarget(userID, universityID int64, reason string) (*models.UniversityTarget, error) {
	university, err := s.universityRepo.GetUniversityByID(universityID)
	if err != nil {
		return nil, err
	}
	if university == nil {
		return nil, ErrUniversityNotFound
	}

	existing, err := s.targetRepo.GetTargetByUserAndUniversity(userID, universityID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTargetExists
	}

	return s.targetRepo.CreateTarget(&models.UniversityTarget{
		UserID:       userID,
		UniversityID: universityID,
		Reason:       reason,
	})
}

// ListTargets retrieves a student's targets with their universities
func (s *TargetService) ListTargets(userID int64) ([]TargetDetail, error) {
	targets, err := s.targetRepo.GetTargetsByUser(userID)
	if err != nil {
		return nil, err
	}

	details := make([]TargetDetail, 0, len(targets))
	for _, target := range targets {
		university, err := s.universityRepo.GetUniversityByID(target.UniversityID)
		if err != nil {
			return nil, err
		}
		if university == nil {
			continue
		}
		details = append(details, TargetDetail{
			Target:     target,
			University: *university,
		})
	}

	return details, nil
}

// UpdateTarget updates a target's reason
func (s *TargetService) UpdateTarget(userID, targetID int64, reason string) error {
	if _, err := s.ownedTarget(userID, targetID); err != nil {
		return err
	}
	return s.targetRepo.UpdateTarget(targetID, reason)
}

// RemoveTarget removes a university from a student's target list
func (s *TargetService) RemoveTarget(userID, targetID int64) error {
	if _, err := s.ownedTarget(userID, targetID); err != nil {
		return err
	}
	return s.targetRepo.DeleteTarget(targetID)
}

// AssessTarget classifies one target against the student's current
// profile, caches the tier on the target, and returns the full
// explanation
func (s *TargetService) AssessTarget(userID, targetID int64) (*TargetDetail, error) {
	target, err := s.ownedTarget(userID, targetID)
	if err != nil {
		return nil, err
	}

	university, err := s.universityRepo.GetUniversityByID(target.UniversityID)
	if err != nil {
		return nil, err
	}
	if university == nil {
		return nil, ErrUniversityNotFound
	}

	profile, err := s.buildProfile(userID)
	if err != nil {
		return nil, err
	}

	assessment := planner.Classify(profile, *university, LoadRiskPolicy(s.settingsRepo))

	if err := s.targetRepo.UpdateAssessment(targetID, string(assessment.Tier)); err != nil {
		return nil, err
	}

	refreshed, err := s.targetRepo.GetTargetByID(targetID)
	if err != nil {
		return nil, err
	}
	if refreshed != nil {
		target = refreshed
	}

	return &TargetDetail{
		Target:     *target,
		University: *university,
		Assessment: &assessment,
	}, nil
}

// AssessAllTargets classifies every target on the student's list
func (s *TargetService) AssessAllTargets(userID int64) ([]TargetDetail, error) {
	targets, err := s.targetRepo.GetTargetsByUser(userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.buildProfile(userID)
	if err != nil {
		return nil, err
	}
	policy := LoadRiskPolicy(s.settingsRepo)

	details := make([]TargetDetail, 0, len(targets))
	for _, target := range targets {
		university, err := s.universityRepo.GetUniversityByID(target.UniversityID)
		if err != nil {
			return nil, err
		}
		if university == nil {
			continue
		}

		assessment := planner.Classify(profile, *university, policy)
		if err := s.targetRepo.UpdateAssessment(target.ID, string(assessment.Tier)); err != nil {
			return nil, err
		}
		target.Tier = string(assessment.Tier)

		details = append(details, TargetDetail{
			Target:     target,
			University: *university,
			Assessment: &assessment,
		})
	}

	return details, nil
}

// buildProfile assembles the comparison profile: unweighted GPA plus
// the student's best SAT and ACT sittings. Admitted-student averages
// are published unweighted, so the weighted GPA never enters the
// comparison.
func (s *TargetService) buildProfile(userID int64) (planner.Profile, error) {
	graded, err := s.courseService.GradedCourses(userID)
	if err != nil {
		return planner.Profile{}, err
	}

	policy := LoadGPAPolicy(s.settingsRepo)
	policy.LevelBonuses = nil
	gpa, defined := planner.GPA(graded, policy)

	profile := planner.Profile{
		GPA:        gpa,
		GPADefined: defined,
	}

	best, err := s.scoreService.BestScores(userID)
	if err != nil {
		return planner.Profile{}, err
	}
	if sat, ok := best[models.TestSAT]; ok {
		profile.SAT = &sat
	}
	if act, ok := best[models.TestACT]; ok {
		profile.ACT = &act
	}

	return profile, nil
}

// ownedTarget loads a target and verifies ownership
func (s *TargetService) ownedTarget(userID, targetID int64) (*models.UniversityTarget, error) {
	target, err := s.targetRepo.GetTargetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrTargetNotFound
	}
	if target.UserID != userID {
		return nil, ErrNotTargetOwner
	}
	return target, nil
}
