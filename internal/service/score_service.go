package service

import (
	"errors"

	"collegepath/internal/models"
	"collegepath/internal/repository"
	"collegepath/internal/validation"
)

var (
	ErrScoreNotFound = errors.New("score not found")
	ErrNotScoreOwner = errors.New("score does not belong to user")
)

// ScoreService handles standardized test score business logic
type ScoreService struct {
	scoreRepo *repository.ScoreRepository
}

// NewScoreService creates a new score service
func NewScoreService(scoreRepo *repository.ScoreRepository) *ScoreService {
	return &ScoreService{scoreRepo: scoreRepo}
}

// CreateScore records a new test sitting for a student
func (s *ScoreService) CreateScore(userID int64, score *models.StandardizedScore) (*models.StandardizedScore, error) {
	score.UserID = userID
	if err := validation.ValidateScore(score); err != nil {
		return nil, err
	}
	return s.scoreRepo.CreateScore(score)
}

// ListScores retrieves all of a student's test scores
func (s *ScoreService) ListScores(userID int64) ([]models.StandardizedScore, error) {
	return s.scoreRepo.GetScoresByUser(userID)
}

// DeleteScore removes a test score
func (s *ScoreService) DeleteScore(userID, scoreID int64) error {
	score, err := s.scoreRepo.GetScoreByID(scoreID)
	if err != nil {
		return err
	}
	if score == nil {
		return ErrScoreNotFound
	}
	if score.UserID != userID {
		return ErrNotScoreOwner
	}
	return s.scoreRepo.DeleteScore(scoreID)
}

// BestScores returns the highest overall score per test type. Retakes
// are common; the current score for comparison is always the best one.
func (s *ScoreService) BestScores(userID int64) (map[models.TestType]float64, error) {
	scores, err := s.scoreRepo.GetScoresByUser(userID)
	if err != nil {
		return nil, err
	}

	best := make(map[models.TestType]float64)
	for _, score := range scores {
		if current, ok := best[score.Type]; !ok || score.Overall > current {
			best[score.Type] = score.Overall
		}
	}
	return best, nil
}
