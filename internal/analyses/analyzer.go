package analyses

import "context"

// Result carries the scores and suggestions for one analysis run.
type Result struct {
	ResumeScore    int      `json:"resumeScore"`
	PortfolioScore int      `json:"portfolioScore"`
	Suggestions    []string `json:"suggestions"`
}

// Analyzer scores extracted resume and portfolio text. Either input may be
// empty; an empty input scores zero.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText, portfolioText string) (Result, error)
}

// Placeholder is the built-in analyzer. It returns canned suggestions and a
// deterministic score for any non-empty content, standing in until a real
// scoring backend exists.
type Placeholder struct{}

var placeholderSuggestions = []string{
	"Consider adding more quantifiable achievements in your work experience",
	"Add more relevant keywords for your target job role",
	"Include a brief professional summary at the top",
	"Use action verbs to describe your responsibilities",
	"Ensure consistent formatting throughout the document",
}

func (Placeholder) Analyze(ctx context.Context, resumeText, portfolioText string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{
		ResumeScore:    placeholderScore(resumeText),
		PortfolioScore: placeholderScore(portfolioText),
		Suggestions:    append([]string(nil), placeholderSuggestions...),
	}, nil
}

// placeholderScore maps content length onto the 70-100 band. Same input,
// same score.
func placeholderScore(text string) int {
	if text == "" {
		return 0
	}
	score := 70 + len(text)%31
	if score > 100 {
		score = 100
	}
	return score
}
