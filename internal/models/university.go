package models

import "time"

// University is shared, read-only reference data describing an
// institution's published admissions statistics. Owned by the system
// and referenced (never owned) by student targets. Statistical fields
// are pointers because published data is frequently incomplete.
type University struct {
	ID                int64
	Name              string
	City              string
	State             string
	Control           string // "public" or "private"
	AcceptanceRate    *float64 // 0-1
	AvgGPA            *float64 // average admitted GPA on a 4.0 scale
	SAT25             *float64
	SAT75             *float64
	ACT25             *float64
	ACT75             *float64
	TuitionInState    *float64
	TuitionOutOfState *float64
	Enrollment        *int64
	Website           string
}

// HasAdmissionStats reports whether the university publishes enough
// profile statistics (GPA or a test band) for a profile comparison.
// Without them risk assessment falls back to acceptance-rate banding.
func (u *University) HasAdmissionStats() bool {
	if u.AvgGPA != nil {
		return true
	}
	if u.SAT25 != nil && u.SAT75 != nil {
		return true
	}
	if u.ACT25 != nil && u.ACT75 != nil {
		return true
	}
	return false
}

// UniversityTarget links a student to a university they are considering.
// At most one target exists per (student, university) pair. Tier caches
// the latest advisory risk assessment; it is derived, never authoritative.
type UniversityTarget struct {
	ID           int64
	UserID       int64
	UniversityID int64
	Reason       string
	Tier         string // cached planner.RiskTier, empty until assessed
	AssessedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
