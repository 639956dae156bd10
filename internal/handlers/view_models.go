package handlers

import (
	"time"

	"collegepath/internal/models"
	"collegepath/internal/planner"
	"collegepath/internal/service"
)

// View models shape the JSON the API returns. Internal fields like
// password hashes and OAuth subjects never leave the server.

type userView struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	IsAdmin        bool   `json:"is_admin"`
	GraduationYear int    `json:"graduation_year,omitempty"`
	OAuthProvider  string `json:"oauth_provider,omitempty"`
	CreatedAt      string `json:"created_at"`
}

func toUserView(u *models.User) userView {
	return userView{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		IsAdmin:        u.IsAdmin,
		GraduationYear: u.GraduationYear,
		OAuthProvider:  u.OAuthProvider,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

type gradeView struct {
	Percent float64 `json:"percent"`
	Defined bool    `json:"defined"`
}

func toGradeView(g planner.Grade) gradeView {
	return gradeView{Percent: g.Percent, Defined: g.Defined}
}

type courseView struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Level   string  `json:"level"`
	Year    int     `json:"year"`
	Term    string  `json:"term"`
	Credits float64 `json:"credits"`
}

func toCourseView(c *models.Course) courseView {
	return courseView{
		ID:      c.ID,
		Name:    c.Name,
		Level:   string(c.Level),
		Year:    c.Year,
		Term:    string(c.Term),
		Credits: c.Credits,
	}
}

type assignmentView struct {
	ID           int64    `json:"id"`
	CourseID     int64    `json:"course_id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	TotalPoints  float64  `json:"total_points"`
	EarnedPoints *float64 `json:"earned_points"`
	Weight       float64  `json:"weight"`
	Status       string   `json:"status"`
}

func toAssignmentView(a *models.Assignment) assignmentView {
	return assignmentView{
		ID:           a.ID,
		CourseID:     a.CourseID,
		Name:         a.Name,
		Type:         string(a.Type),
		TotalPoints:  a.TotalPoints,
		EarnedPoints: a.EarnedPoints,
		Weight:       a.Weight,
		Status:       string(a.Status),
	}
}

type courseDetailView struct {
	Course      courseView       `json:"course"`
	Assignments []assignmentView `json:"assignments"`
	Grade       gradeView        `json:"grade"`
	Finalized   bool             `json:"finalized"`
}

func toCourseDetailView(d *service.CourseDetail) courseDetailView {
	assignments := make([]assignmentView, 0, len(d.Assignments))
	for i := range d.Assignments {
		assignments = append(assignments, toAssignmentView(&d.Assignments[i]))
	}
	return courseDetailView{
		Course:      toCourseView(&d.Course),
		Assignments: assignments,
		Grade:       toGradeView(d.Grade),
		Finalized:   d.Finalized,
	}
}

type snapshotView struct {
	ID              int64   `json:"id"`
	CourseID        int64   `json:"course_id"`
	CalculatedGrade float64 `json:"calculated_grade"`
	OfficialGrade   *string `json:"official_grade"`
	IsFinal         bool    `json:"is_final"`
	RecordedAt      string  `json:"recorded_at"`
}

func toSnapshotView(s *models.GradeSnapshot) snapshotView {
	return snapshotView{
		ID:              s.ID,
		CourseID:        s.CourseID,
		CalculatedGrade: s.CalculatedGrade,
		OfficialGrade:   s.OfficialGrade,
		IsFinal:         s.IsFinal,
		RecordedAt:      s.RecordedAt.Format(time.RFC3339),
	}
}

type yearSummaryView struct {
	Year         int             `json:"year"`
	Courses      []yearCourse    `json:"courses"`
	CourseCount  int             `json:"course_count"`
	TotalCredits float64         `json:"total_credits"`
	GPA          float64         `json:"gpa"`
	GPADefined   bool            `json:"gpa_defined"`
}

type yearCourse struct {
	Course courseView `json:"course"`
	Grade  gradeView  `json:"grade"`
}

type transcriptView struct {
	Years             []yearSummaryView `json:"years"`
	WeightedGPA       float64           `json:"weighted_gpa"`
	WeightedDefined   bool              `json:"weighted_gpa_defined"`
	UnweightedGPA     float64           `json:"unweighted_gpa"`
	UnweightedDefined bool              `json:"unweighted_gpa_defined"`
	CreditWeighted    bool              `json:"credit_weighted"`
}

func toTranscriptView(t *service.Transcript) transcriptView {
	years := make([]yearSummaryView, 0, len(t.Years))
	for _, y := range t.Years {
		courses := make([]yearCourse, 0, len(y.Courses))
		for i := range y.Courses {
			courses = append(courses, yearCourse{
				Course: toCourseView(&y.Courses[i].Course),
				Grade:  toGradeView(y.Courses[i].Grade),
			})
		}
		years = append(years, yearSummaryView{
			Year:         y.Year,
			Courses:      courses,
			CourseCount:  y.CourseCount,
			TotalCredits: y.TotalCredits,
			GPA:          y.GPA,
			GPADefined:   y.GPADefined,
		})
	}
	return transcriptView{
		Years:             years,
		WeightedGPA:       t.WeightedGPA,
		WeightedDefined:   t.WeightedGPADefined,
		UnweightedGPA:     t.UnweightedGPA,
		UnweightedDefined: t.UnweightedGPADefined,
		CreditWeighted:    t.CreditWeighted,
	}
}

type scoreView struct {
	ID       int64              `json:"id"`
	Type     string             `json:"type"`
	Overall  float64            `json:"overall"`
	Sections map[string]float64 `json:"sections,omitempty"`
	TakenAt  string             `json:"taken_at"`
}

func toScoreView(s *models.StandardizedScore) scoreView {
	return scoreView{
		ID:       s.ID,
		Type:     string(s.Type),
		Overall:  s.Overall,
		Sections: s.Sections,
		TakenAt:  s.TakenAt.Format("2006-01-02"),
	}
}

type universityView struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Control           string   `json:"control"`
	AcceptanceRate    *float64 `json:"acceptance_rate"`
	AvgGPA            *float64 `json:"avg_gpa"`
	SAT25             *float64 `json:"sat_25"`
	SAT75             *float64 `json:"sat_75"`
	ACT25             *float64 `json:"act_25"`
	ACT75             *float64 `json:"act_75"`
	TuitionInState    *float64 `json:"tuition_in_state"`
	TuitionOutOfState *float64 `json:"tuition_out_of_state"`
	Enrollment        *int64   `json:"enrollment"`
	Website           string   `json:"website,omitempty"`
}

func toUniversityView(u *models.University) universityView {
	return universityView{
		ID:                u.ID,
		Name:              u.Name,
		City:              u.City,
		State:             u.State,
		Control:           u.Control,
		AcceptanceRate:    u.AcceptanceRate,
		AvgGPA:            u.AvgGPA,
		SAT25:             u.SAT25,
		SAT75:             u.SAT75,
		ACT25:             u.ACT25,
		ACT75:             u.ACT75,
		TuitionInState:    u.TuitionInState,
		TuitionOutOfState: u.TuitionOutOfState,
		Enrollment:        u.Enrollment,
		Website:           u.Website,
	}
}

type assessmentView struct {
	Tier           string   `json:"tier"`
	GPADelta       *float64 `json:"gpa_delta"`
	TestBand       string   `json:"test_band"`
	AcceptanceRate *float64 `json:"acceptance_rate"`
	EliteOverride  bool     `json:"elite_override"`
	StatsFallback  bool     `json:"stats_fallback"`
}

func toAssessmentView(a *planner.Assessment) assessmentView {
	return assessmentView{
		Tier:           string(a.Tier),
		GPADelta:       a.GPADelta,
		TestBand:       string(a.TestBand),
		AcceptanceRate: a.AcceptanceRate,
		EliteOverride:  a.EliteOverride,
		StatsFallback:  a.StatsFallback,
	}
}

type targetView struct {
	ID         int64           `json:"id"`
	University universityView  `json:"university"`
	Reason     string          `json:"reason,omitempty"`
	Tier       string          `json:"tier,omitempty"`
	AssessedAt *string         `json:"assessed_at,omitempty"`
	Assessment *assessmentView `json:"assessment,omitempty"`
}

func toTargetView(d *service.TargetDetail) targetView {
	view := targetView{
		ID:         d.Target.ID,
		University: toUniversityView(&d.University),
		Reason:     d.Target.Reason,
		Tier:       d.Target.Tier,
	}
	if d.Target.AssessedAt != nil {
		formatted := d.Target.AssessedAt.Format(time.RFC3339)
		view.AssessedAt = &formatted
	}
	if d.Assessment != nil {
		assessment := toAssessmentView(d.Assessment)
		view.Assessment = &assessment
	}
	return view
}

type extracurricularView struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Role         string  `json:"role,omitempty"`
	Category     string  `json:"category,omitempty"`
	HoursPerWeek float64 `json:"hours_per_week"`
	WeeksPerYear int     `json:"weeks_per_year"`
	Years        int     `json:"years"`
	Description  string  `json:"description,omitempty"`
}

func toExtracurricularView(e *models.Extracurricular) extracurricularView {
	return extracurricularView{
		ID:           e.ID,
		Name:         e.Name,
		Role:         e.Role,
		Category:     e.Category,
		HoursPerWeek: e.HoursPerWeek,
		WeeksPerYear: e.WeeksPerYear,
		Years:        e.Years,
		Description:  e.Description,
	}
}

type achievementView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Level       string `json:"level,omitempty"`
	Year        int    `json:"year,omitempty"`
	Description string `json:"description,omitempty"`
}

func toAchievementView(a *models.Achievement) achievementView {
	return achievementView{
		ID:          a.ID,
		Title:       a.Title,
		Level:       a.Level,
		Year:        a.Year,
		Description: a.Description,
	}
}

type personalityInputView struct {
	ID       int64  `json:"id"`
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

func toPersonalityInputView(p *models.PersonalityInput) personalityInputView {
	return personalityInputView{ID: p.ID, Prompt: p.Prompt, Response: p.Response}
}

type essayView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Prompt    string `json:"prompt,omitempty"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	WordCount int    `json:"word_count"`
	UpdatedAt string `json:"updated_at"`
}

func toEssayView(e *models.ApplicationEssay) essayView {
	return essayView{
		ID:        e.ID,
		Title:     e.Title,
		Prompt:    e.Prompt,
		Content:   e.Content,
		Status:    string(e.Status),
		WordCount: e.WordCount(),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}

type portfolioView struct {
	Extracurriculars  []extracurricularView  `json:"extracurriculars"`
	Achievements      []achievementView      `json:"achievements"`
	PersonalityInputs []personalityInputView `json:"personality_inputs"`
	Essays            []essayView            `json:"essays"`
}

func toPortfolioView(p *service.Portfolio) portfolioView {
	view := portfolioView{
		Extracurriculars:  make([]extracurricularView, 0, len(p.Extracurriculars)),
		Achievements:      make([]achievementView, 0, len(p.Achievements)),
		PersonalityInputs: make([]personalityInputView, 0, len(p.PersonalityInputs)),
		Essays:            make([]essayView, 0, len(p.Essays)),
	}
	for i := range p.Extracurriculars {
		view.Extracurriculars = append(view.Extracurriculars, toExtracurricularView(&p.Extracurriculars[i]))
	}
	for i := range p.Achievements {
		view.Achievements = append(view.Achievements, toAchievementView(&p.Achievements[i]))
	}
	for i := range p.PersonalityInputs {
		view.PersonalityInputs = append(view.PersonalityInputs, toPersonalityInputView(&p.PersonalityInputs[i]))
	}
	for i := range p.Essays {
		view.Essays = append(view.Essays, toEssayView(&p.Essays[i]))
	}
	return view
}

type adviceView struct {
	Suggestions []string `json:"suggestions"`
	Disclaimer  string   `json:"disclaimer"`
}

func toAdviceView(a *service.Advice) adviceView {
	return adviceView{Suggestions: a.Suggestions, Disclaimer: a.Disclaimer}
}

type invitationView struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"`
	Email       string  `json:"email"`
	InviterName string  `json:"inviter_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
	ExpiresAt   string  `json:"expires_at"`
	UsedAt      *string `json:"used_at,omitempty"`
}

func toInvitationView(inv *models.Invitation) invitationView {
	view := invitationView{
		ID:          inv.ID,
		Code:        inv.Code,
		Email:       inv.Email,
		InviterName: inv.InviterName,
		CreatedAt:   inv.CreatedAt.Format(time.RFC3339),
		ExpiresAt:   inv.ExpiresAt.Format(time.RFC3339),
	}
	if inv.UsedAt != nil {
		formatted := inv.UsedAt.Format(time.RFC3339)
		view.UsedAt = &formatted
	}
	return view
}
