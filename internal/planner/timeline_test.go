package planner

import (
	"reflect"
	"testing"

	"collegepath/internal/models"
)

func timelineCourse(name string, year int, term models.Term, credits float64) GradedCourse {
	return GradedCourse{
		Course: models.Course{
			Name:    name,
			Level:   models.LevelRegular,
			Year:    year,
			Term:    term,
			Credits: credits,
		},
		Grade: Grade{Percent: 92, Defined: true},
	}
}

func TestGroupByYearOrdersYearsAndTerms(t *testing.T) {
	// Deliberately shuffled input: winter before fall, year 11 before 9
	courses := []GradedCourse{
		timelineCourse("Art", 11, models.TermWinter, 1),
		timelineCourse("Biology", 9, models.TermSpring, 1),
		timelineCourse("Algebra", 9, models.TermFall, 1),
		timelineCourse("History", 11, models.TermFall, 1),
		timelineCourse("Drama", 11, models.TermSummer, 0.5),
		timelineCourse("Chemistry", 11, models.TermSpring, 1),
	}

	summaries := GroupByYear(courses, DefaultGPAPolicy())

	if len(summaries) != 2 {
		t.Fatalf("expected 2 years, got %d", len(summaries))
	}
	if summaries[0].Year != 9 || summaries[1].Year != 11 {
		t.Errorf("years = %d, %d; want 9, 11", summaries[0].Year, summaries[1].Year)
	}

	var year11Names []string
	for _, gc := range summaries[1].Courses {
		year11Names = append(year11Names, gc.Course.Name)
	}
	expected := []string{"History", "Chemistry", "Drama", "Art"}
	if !reflect.DeepEqual(year11Names, expected) {
		t.Errorf("year 11 order = %v, want %v (fall, spring, summer, winter)", year11Names, expected)
	}
}

func TestGroupByYearIdempotent(t *testing.T) {
	courses := []GradedCourse{
		timelineCourse("Chemistry", 10, models.TermSpring, 1),
		timelineCourse("Geometry", 10, models.TermFall, 1),
		timelineCourse("English", 10, models.TermFall, 1),
	}

	first := GroupByYear(courses, DefaultGPAPolicy())
	second := GroupByYear(courses, DefaultGPAPolicy())

	if !reflect.DeepEqual(first, second) {
		t.Error("grouping the same courses twice should yield identical results")
	}
}

func TestGroupByYearStats(t *testing.T) {
	missingCredits := timelineCourse("Band", 12, models.TermFall, 0)

	courses := []GradedCourse{
		timelineCourse("Government", 12, models.TermFall, 1),
		timelineCourse("Statistics", 12, models.TermSpring, 0.5),
		missingCredits,
	}

	summaries := GroupByYear(courses, DefaultGPAPolicy())
	if len(summaries) != 1 {
		t.Fatalf("expected 1 year, got %d", len(summaries))
	}

	summary := summaries[0]
	if summary.CourseCount != 3 {
		t.Errorf("course count = %d, want 3", summary.CourseCount)
	}
	// Missing credits default to 1
	if summary.TotalCredits != 2.5 {
		t.Errorf("total credits = %v, want 2.5", summary.TotalCredits)
	}
	if !summary.GPADefined || summary.GPA != 4.0 {
		t.Errorf("year GPA = %v (defined=%v), want 4.0", summary.GPA, summary.GPADefined)
	}
}

func TestGroupByYearUndefinedYearGPA(t *testing.T) {
	noGrade := GradedCourse{
		Course: models.Course{Name: "New Course", Level: models.LevelRegular, Year: 9, Term: models.TermFall, Credits: 1},
	}

	summaries := GroupByYear([]GradedCourse{noGrade}, DefaultGPAPolicy())
	if len(summaries) != 1 {
		t.Fatalf("expected 1 year, got %d", len(summaries))
	}
	if summaries[0].GPADefined {
		t.Error("year GPA should be undefined when no course has a grade")
	}
}
