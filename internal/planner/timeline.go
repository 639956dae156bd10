package planner

import "sort"

// YearSummary is one grade-level bucket of a student's timeline:
// the year's courses in academic-calendar order plus derived stats.
type YearSummary struct {
	Year         int
	Courses      []GradedCourse
	CourseCount  int
	TotalCredits float64
	GPA          float64
	GPADefined   bool
}

// GroupByYear partitions courses into per-year buckets for display and
// statistics. Years are ascending; within a year courses follow the
// academic calendar (fall, spring, summer, winter) and then name, so
// the grouping is stable regardless of input order. The year GPA is
// computed over only that year's courses under the supplied policy.
func GroupByYear(courses []GradedCourse, policy GPAPolicy) []YearSummary {
	buckets := make(map[int][]GradedCourse)
	for _, gc := range courses {
		buckets[gc.Course.Year] = append(buckets[gc.Course.Year], gc)
	}

	years := make([]int, 0, len(buckets))
	for year := range buckets {
		years = append(years, year)
	}
	sort.Ints(years)

	summaries := make([]YearSummary, 0, len(years))
	for _, year := range years {
		yearCourses := buckets[year]
		sort.SliceStable(yearCourses, func(i, j int) bool {
			a, b := yearCourses[i].Course, yearCourses[j].Course
			if a.Term.Order() != b.Term.Order() {
				return a.Term.Order() < b.Term.Order()
			}
			return a.Name < b.Name
		})

		totalCredits := 0.0
		for _, gc := range yearCourses {
			credits := gc.Course.Credits
			if credits <= 0 {
				credits = 1
			}
			totalCredits += credits
		}

		gpa, defined := GPA(yearCourses, policy)

		summaries = append(summaries, YearSummary{
			Year:         year,
			Courses:      yearCourses,
			CourseCount:  len(yearCourses),
			TotalCredits: totalCredits,
			GPA:          gpa,
			GPADefined:   defined,
		})
	}

	return summaries
}
