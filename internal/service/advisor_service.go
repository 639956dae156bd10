package service

import (
	"context"
	"fmt"
	"strings"

	"collegepath/internal/advisor"
	"collegepath/internal/models"
)

// advisorDisclaimer is attached to every advisor response. The advice
// is generated, not reviewed by a counselor.
const advisorDisclaimer = "This guidance is AI-generated and advisory only. Always confirm decisions with your school counselor."

const advisorSystemPrompt = `You are a college admissions advisor helping a high school student plan their applications.
Be encouraging but honest. Base your advice only on the information provided.
Respond with a short list of concrete suggestions, one per line, each starting with "- ".`

// AdvisorService generates AI-backed planning advice from a student's
// academic record and portfolio
type AdvisorService struct {
	client            *advisor.Client
	transcriptService *TranscriptService
	scoreService      *ScoreService
	portfolioService  *PortfolioService
	targetService     *TargetService
}

// NewAdvisorService creates a new advisor service
func NewAdvisorService(client *advisor.Client, transcriptService *TranscriptService, scoreService *ScoreService, portfolioService *PortfolioService, targetService *TargetService) *AdvisorService {
	return &AdvisorService{
		client:            client,
		transcriptService: transcriptService,
		scoreService:      scoreService,
		portfolioService:  portfolioService,
		targetService:     targetService,
	}
}

// Enabled reports whether advisor features are available
func (s *AdvisorService) Enabled() bool {
	return s.client != nil && s.client.Enabled()
}

// Advice is the advisor's response: discrete suggestions plus the
// standing disclaimer
type Advice struct {
	Suggestions []string
	Disclaimer  string
}

// PortfolioAdvice generates suggestions for strengthening a student's
// overall application profile
func (s *AdvisorService) PortfolioAdvice(ctx context.Context, userID int64) (*Advice, error) {
	summary, err := s.buildStudentSummary(userID)
	if err != nil {
		return nil, err
	}

	prompt := "Here is my current profile:\n\n" + summary +
		"\nWhat should I focus on to strengthen my college applications?"

	reply, err := s.client.Complete(ctx, advisorSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return &Advice{
		Suggestions: parseSuggestions(reply),
		Disclaimer:  advisorDisclaimer,
	}, nil
}

// CourseSuggestions generates suggestions for next year's course
// selections based on the record so far
func (s *AdvisorService) CourseSuggestions(ctx context.Context, userID int64) (*Advice, error) {
	summary, err := s.buildStudentSummary(userID)
	if err != nil {
		return nil, err
	}

	prompt := "Here is my current profile:\n\n" + summary +
		"\nWhich courses should I consider taking next year, and at what level?"

	reply, err := s.client.Complete(ctx, advisorSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return &Advice{
		Suggestions: parseSuggestions(reply),
		Disclaimer:  advisorDisclaimer,
	}, nil
}

// GradeAnalysis generates an analysis of the student's grade trends
// and where improvement would matter most
func (s *AdvisorService) GradeAnalysis(ctx context.Context, userID int64) (*Advice, error) {
	summary, err := s.buildStudentSummary(userID)
	if err != nil {
		return nil, err
	}

	prompt := "Here is my current profile:\n\n" + summary +
		"\nAnalyze my grades. Where am I trending up or down, and which courses should I prioritize improving?"

	reply, err := s.client.Complete(ctx, advisorSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return &Advice{
		Suggestions: parseSuggestions(reply),
		Disclaimer:  advisorDisclaimer,
	}, nil
}

// Chances generates narrative commentary on one target university,
// grounded in the same assessment the planner computes. The tier comes
// from the classifier; the advisor only explains it.
func (s *AdvisorService) Chances(ctx context.Context, userID, targetID int64) (*Advice, error) {
	detail, err := s.targetService.AssessTarget(userID, targetID)
	if err != nil {
		return nil, err
	}

	summary, err := s.buildStudentSummary(userID)
	if err != nil {
		return nil, err
	}

	var prompt strings.Builder
	prompt.WriteString("Here is my current profile:\n\n" + summary + "\n")
	fmt.Fprintf(&prompt, "I am considering %s.\n", detail.University.Name)
	if detail.University.AcceptanceRate != nil {
		fmt.Fprintf(&prompt, "Its acceptance rate is %.0f%%.\n", *detail.University.AcceptanceRate*100)
	}
	if detail.University.AvgGPA != nil {
		fmt.Fprintf(&prompt, "Its average admitted GPA is %.2f.\n", *detail.University.AvgGPA)
	}
	if detail.Assessment != nil {
		fmt.Fprintf(&prompt, "My advisor tool rates it as a %s school for me.\n", detail.Assessment.Tier)
	}
	prompt.WriteString("Explain what this assessment means for me and how I could improve my application for this school. Do not promise or predict admission.")

	reply, err := s.client.Complete(ctx, advisorSystemPrompt, prompt.String())
	if err != nil {
		return nil, err
	}

	return &Advice{
		Suggestions: parseSuggestions(reply),
		Disclaimer:  advisorDisclaimer,
	}, nil
}

// EssayFeedback generates feedback on one application essay
func (s *AdvisorService) EssayFeedback(ctx context.Context, userID int64, essay *models.ApplicationEssay) (*Advice, error) {
	var prompt strings.Builder
	prompt.WriteString("Please give feedback on my college application essay.\n")
	if essay.Prompt != "" {
		prompt.WriteString("Essay prompt: " + essay.Prompt + "\n")
	}
	fmt.Fprintf(&prompt, "Word count: %d\n\n", essay.WordCount())
	prompt.WriteString(essay.Content)

	reply, err := s.client.Complete(ctx, advisorSystemPrompt, prompt.String())
	if err != nil {
		return nil, err
	}

	return &Advice{
		Suggestions: parseSuggestions(reply),
		Disclaimer:  advisorDisclaimer,
	}, nil
}

// buildStudentSummary renders the student's record as plain text for
// the advisor prompt
func (s *AdvisorService) buildStudentSummary(userID int64) (string, error) {
	var b strings.Builder

	transcript, err := s.transcriptService.GetTranscript(userID, false)
	if err != nil {
		return "", err
	}
	if transcript.WeightedGPADefined {
		fmt.Fprintf(&b, "Weighted GPA: %.2f\n", transcript.WeightedGPA)
	}
	if transcript.UnweightedGPADefined {
		fmt.Fprintf(&b, "Unweighted GPA: %.2f\n", transcript.UnweightedGPA)
	}
	for _, year := range transcript.Years {
		fmt.Fprintf(&b, "Grade %d: %d courses", year.Year, year.CourseCount)
		if year.GPADefined {
			fmt.Fprintf(&b, ", year GPA %.2f", year.GPA)
		}
		b.WriteString("\n")
		for _, gc := range year.Courses {
			fmt.Fprintf(&b, "  - %s (%s, %s)", gc.Course.Name, gc.Course.Level, gc.Course.Term)
			if gc.Grade.Defined {
				fmt.Fprintf(&b, ": %.1f%%", gc.Grade.Percent)
			}
			b.WriteString("\n")
		}
	}

	best, err := s.scoreService.BestScores(userID)
	if err != nil {
		return "", err
	}
	for testType, score := range best {
		fmt.Fprintf(&b, "Best %s: %.0f\n", strings.ToUpper(string(testType)), score)
	}

	portfolio, err := s.portfolioService.GetPortfolio(userID)
	if err != nil {
		return "", err
	}
	for _, e := range portfolio.Extracurriculars {
		fmt.Fprintf(&b, "Activity: %s (%s, %d years, %.0f hrs/week)\n", e.Name, e.Role, e.Years, e.HoursPerWeek)
	}
	for _, a := range portfolio.Achievements {
		fmt.Fprintf(&b, "Achievement: %s (%s, %d)\n", a.Title, a.Level, a.Year)
	}
	for _, p := range portfolio.PersonalityInputs {
		fmt.Fprintf(&b, "About me: %s\n", p.Response)
	}

	targets, err := s.targetService.ListTargets(userID)
	if err != nil {
		return "", err
	}
	for _, t := range targets {
		fmt.Fprintf(&b, "Target university: %s", t.University.Name)
		if t.Target.Tier != "" {
			fmt.Fprintf(&b, " (%s)", t.Target.Tier)
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

// parseSuggestions extracts bullet items from the advisor's reply. A
// reply without bullets is kept whole as a single suggestion.
func parseSuggestions(reply string) []string {
	var suggestions []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		item, ok := stripBullet(line)
		if ok && item != "" {
			suggestions = append(suggestions, item)
		}
	}

	if len(suggestions) == 0 {
		cleaned := strings.TrimSpace(reply)
		if cleaned != "" {
			suggestions = append(suggestions, cleaned)
		}
	}
	return suggestions
}

// stripBullet removes a leading "- ", "* ", "•" or "1." marker. The
// second return is false for lines that are not list items.
func stripBullet(line string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "• ", "-", "*", "•"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):]), true
		}
	}

	// Numbered lists show up too
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return strings.TrimSpace(line[i+1:]), true
	}

	return "", false
}
