package models

import (
	"strings"
	"time"
)

// Extracurricular is a student activity outside the classroom
type Extracurricular struct {
	ID           int64
	UserID       int64
	Name         string
	Role         string
	Category     string // e.g. "athletics", "arts", "service", "work"
	HoursPerWeek float64
	WeeksPerYear int
	Years        int
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Achievement is an award or honor earned by a student
type Achievement struct {
	ID          int64
	UserID      int64
	Title       string
	Level       string // "school", "regional", "national", "international"
	Year        int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PersonalityInput is a free-form self-description prompt response the
// advisor uses when generating portfolio advice
type PersonalityInput struct {
	ID        int64
	UserID    int64
	Prompt    string
	Response  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EssayStatus tracks an application essay draft
type EssayStatus string

const (
	EssayDraft EssayStatus = "draft"
	EssayFinal EssayStatus = "final"
)

// ApplicationEssay is a student's college application essay
type ApplicationEssay struct {
	ID        int64
	UserID    int64
	Title     string
	Prompt    string
	Content   string
	Status    EssayStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WordCount returns the number of whitespace-separated words in the essay
func (e *ApplicationEssay) WordCount() int {
	return len(strings.Fields(e.Content))
}
