package service

import (
	"errors"
	"strings"

	"collegepath/internal/models"
	"collegepath/internal/repository"
	"collegepath/internal/validation"
)

var (
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
	ErrNotPortfolioOwner     = errors.New("portfolio item does not belong to user")
)

// PortfolioService handles the non-academic portfolio: activities,
// achievements, personality inputs and application essays
type PortfolioService struct {
	portfolioRepo *repository.PortfolioRepository
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(portfolioRepo *repository.PortfolioRepository) *PortfolioService {
	return &PortfolioService{portfolioRepo: portfolioRepo}
}

// Portfolio is a student's complete non-academic record
type Portfolio struct {
	Extracurriculars  []models.Extracurricular
	Achievements      []models.Achievement
	PersonalityInputs []models.PersonalityInput
	Essays            []models.ApplicationEssay
}

// GetPortfolio assembles a student's full portfolio
func (s *PortfolioService) GetPortfolio(userID int64) (*Portfolio, error) {
	extracurriculars, err := s.portfolioRepo.GetExtracurricularsByUser(userID)
	if err != nil {
		return nil, err
	}
	achievements, err := s.portfolioRepo.GetAchievementsByUser(userID)
	if err != nil {
		return nil, err
	}
	inputs, err := s.portfolioRepo.GetPersonalityInputsByUser(userID)
	if err != nil {
		return nil, err
	}
	essays, err := s.portfolioRepo.GetEssaysByUser(userID)
	if err != nil {
		return nil, err
	}

	return &Portfolio{
		Extracurriculars:  extracurriculars,
		Achievements:      achievements,
		PersonalityInputs: inputs,
		Essays:            essays,
	}, nil
}

// CreateExtracurricular adds an activity
func (s *PortfolioService) CreateExtracurricular(userID int64, e *models.Extracurricular) (*models.Extracurricular, error) {
	e.UserID = userID
	if strings.TrimSpace(e.Name) == "" {
		return nil, validation.ValidationError{Field: "name", Message: "Activity name is required"}
	}
	if e.HoursPerWeek < 0 || e.WeeksPerYear < 0 || e.Years < 0 {
		return nil, validation.ValidationError{Field: "time", Message: "Time commitment cannot be negative"}
	}
	return s.portfolioRepo.CreateExtracurricular(e)
}

// UpdateExtracurricular updates an activity
func (s *PortfolioService) UpdateExtracurricular(userID int64, e *models.Extracurricular) error {
	existing, err := s.portfolioRepo.GetExtracurricularByID(e.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPortfolioItemNotFound
	}
	if existing.UserID != userID {
		return ErrNotPortfolioOwner
	}
	if strings.TrimSpace(e.Name) == "" {
		return validation.ValidationError{Field: "name", Message: "Activity name is required"}
	}
	return s.portfolioRepo.UpdateExtracurricular(e)
}

// DeleteExtracurricular removes an activity
func (s *PortfolioService) DeleteExtracurricular(userID, id int64) error {
	existing, err := s.portfolioRepo.GetExtracurricularByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPortfolioItemNotFound
	}
	if existing.UserID != userID {
		return ErrNotPortfolioOwner
	}
	return s.portfolioRepo.DeleteExtracurricular(id)
}

// CreateAchievement adds an award or honor
func (s *PortfolioService) CreateAchievement(userID int64, a *models.Achievement) (*models.Achievement, error) {
	a.UserID = userID
	if strings.TrimSpace(a.Title) == "" {
		return nil, validation.ValidationError{Field: "title", Message: "Achievement title is required"}
	}
	return s.portfolioRepo.CreateAchievement(a)
}

// UpdateAchievement updates an achievement
func (s *PortfolioService) UpdateAchievement(userID int64, a *models.Achievement) error {
	existing, err := s.portfolioRepo.GetAchievementByID(a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPortfolioItemNotFound
	}
	if existing.UserID != userID {
		return ErrNotPortfolioOwner
	}
	if strings.TrimSpace(a.Title) == "" {
		return validation.ValidationError{Field: "title", Message: "Achievement title is required"}
	}
	return s.portfolioRepo.UpdateAchievement(a)
}

// DeleteAchievement removes an achievement
func (s *PortfolioService) DeleteAchievement(userID, id int64) error {
	existing, err := s.portfolioRepo.GetAchievementByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPortfolioItemNotFound
	}
	if existing.UserID != userID {
		return ErrNotPortfolioOwner
	}
	return s.portfolioRepo.DeleteAchievement(id)
}

// CreatePersonalityInput adds a self-description prompt response
func (s *PortfolioService) CreatePersonalityInput(userID int64, p *models.PersonalityInput) (*models.PersonalityInput, error) {
	p.UserID = userID
	if strings.TrimSpace(p.Response) == "" {
		return nil, validation.ValidationError{Field: "response", Message: "Response is required"}
	}
	return s.portfolioRepo.CreatePersonalityInput(p)
}

// UpdatePersonalityInput updates a prompt response
func (s *PortfolioService) UpdatePersonalityInput(userID int64, p *models.PersonalityInput) error {
	existing, err := s.portfolioRepo.GetPersonalityInputByID(p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPortfolioItemNotFound
	}
	if existing.UserID != userID {
		return ErrNotPortfolioOwner
	}
	return s.portfolioRepo.UpdatePersonalityInput(p)
}

// DeletePersonalityInput removes a prompt response
func (s *PortfolioService) DeletePersonalityInput(userID, id int64) error {
	existing, err := s.portfolioRepo.GetPersonalityInputByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPortfolioItemNotFound
	}
	if existing.UserID != userID {
		return ErrNotPortfolioOwner
	}
	return s.portfolioRepo.DeletePersonalityInput(id)
}

// CreateEssay adds an application essay draft
func (s *PortfolioService) CreateEssay(userID int64, e *models.ApplicationEssay) (*models.ApplicationEssay, error) {
	e.UserID = userID
	if e.Status == "" {
		e.Status = models.EssayDraft
	}
	if strings.TrimSpace(e.Title) == "" {
		return nil, validation.ValidationError{Field: "title", Message: "Essay title is required"}
	}
	return s.portfolioRepo.CreateEssay(e)
}

// GetEssay retrieves one essay with an ownership check
func (s *PortfolioService) GetEssay(userID, id int64) (*models.ApplicationEssay, error) {
	essay, err := s.portfolioRepo.GetEssayByID(id)
	if err != nil {
		return nil, err
	}
	if essay == nil {
		return nil, ErrPortfolioItemNotFound
	}
	if essay.UserID != userID {
		return nil, ErrNotPortfolioOwner
	}
	return essay, nil
}

// UpdateEssay updates an essay draft
func (s *PortfolioService) UpdateEssay(userID int64, e *models.ApplicationEssay) error {
	existing, err := s.portfolioRepo.GetEssayByID(e.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPortfolioItemNotFound
	}
	if existing.UserID != userID {
		return ErrNotPortfolioOwner
	}
	if e.Status == "" {
		e.Status = existing.Status
	}
	if strings.TrimSpace(e.Title) == "" {
		return validation.ValidationError{Field: "title", Message: "Essay title is required"}
	}
	return s.portfolioRepo.UpdateEssay(e)
}

// DeleteEssay removes an essay
func (s *PortfolioService) DeleteEssay(userID, id int64) error {
	existing, err := s.portfolioRepo.GetEssayByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPortfolioItemNotFound
	}
	if existing.UserID != userID {
		return ErrNotPortfolioOwner
	}
	return s.portfolioRepo.DeleteEssay(id)
}
