package validation

import (
	"fmt"
	"regexp"
	"strings"

	"collegepath/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidateCourse checks course fields against the closed enums and ranges
func ValidateCourse(course *models.Course) error {
	if err := ValidateName(course.Name); err != nil {
		return err
	}
	if !course.Level.IsValid() {
		return ValidationError{Field: "level", Message: fmt.Sprintf("unknown academic level %q", course.Level)}
	}
	if !course.Term.IsValid() {
		return ValidationError{Field: "term", Message: fmt.Sprintf("unknown term %q", course.Term)}
	}
	if course.Year < 9 || course.Year > 12 {
		return ValidationError{Field: "year", Message: "year must be a grade level between 9 and 12"}
	}
	if course.Credits <= 0 {
		return ValidationError{Field: "credits", Message: "credits must be positive"}
	}
	return nil
}

// ValidateAssignment checks assignment fields. A non-positive total or a
// negative weight or earned score is a caller contract violation.
func ValidateAssignment(assignment *models.Assignment) error {
	if err := ValidateName(assignment.Name); err != nil {
		return err
	}
	if !assignment.Type.IsValid() {
		return ValidationError{Field: "type", Message: fmt.Sprintf("unknown assignment type %q", assignment.Type)}
	}
	if !assignment.Status.IsValid() {
		return ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", assignment.Status)}
	}
	if assignment.TotalPoints <= 0 {
		return ValidationError{Field: "total_points", Message: "total points must be positive"}
	}
	if assignment.Weight < 0 || assignment.Weight > 100 {
		return ValidationError{Field: "weight", Message: "weight must be between 0 and 100"}
	}
	if assignment.EarnedPoints != nil && *assignment.EarnedPoints < 0 {
		return ValidationError{Field: "earned_points", Message: "earned points cannot be negative"}
	}
	return nil
}

// ValidateScore checks a standardized score against its test scale
func ValidateScore(score *models.StandardizedScore) error {
	if !score.Type.IsValid() {
		return ValidationError{Field: "type", Message: fmt.Sprintf("unknown test type %q", score.Type)}
	}
	if score.Overall < 0 {
		return ValidationError{Field: "overall", Message: "score cannot be negative"}
	}
	if max := score.Type.MaxScore(); max > 0 && score.Overall > max {
		return ValidationError{Field: "overall", Message: fmt.Sprintf("score exceeds the %s maximum of %g", strings.ToUpper(string(score.Type)), max)}
	}
	return nil
}
