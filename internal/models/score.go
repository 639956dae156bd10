package models

import "time"

// TestType identifies a standardized test
type TestType string

const (
	TestSAT   TestType = "sat"
	TestACT   TestType = "act"
	TestAP    TestType = "ap"
	TestIB    TestType = "ib"
	TestTOEFL TestType = "toefl"
	TestIELTS TestType = "ielts"
	TestOther TestType = "other"
)

// TestTypes lists the known standardized tests
var TestTypes = []TestType{
	TestSAT, TestACT, TestAP, TestIB, TestTOEFL, TestIELTS, TestOther,
}

// IsValid reports whether the test type is known
func (t TestType) IsValid() bool {
	for _, tt := range TestTypes {
		if t == tt {
			return true
		}
	}
	return false
}

// MaxScore returns the top of the test's scale, or 0 when the scale
// is not fixed (TestOther)
func (t TestType) MaxScore() float64 {
	switch t {
	case TestSAT:
		return 1600
	case TestACT:
		return 36
	case TestAP:
		return 5
	case TestIB:
		return 45
	case TestTOEFL:
		return 120
	case TestIELTS:
		return 9
	default:
		return 0
	}
}

// StandardizedScore represents one sitting of a standardized test.
// Multiple scores of the same type may coexist (retakes); the score
// shown as "current" is the highest overall per type.
type StandardizedScore struct {
	ID        int64
	UserID    int64
	Type      TestType
	Overall   float64
	Sections  map[string]float64 // e.g. {"math": 760, "reading_writing": 720}
	TakenAt   time.Time
	CreatedAt time.Time
}
