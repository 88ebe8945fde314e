package generate

import (
	"strings"
	"testing"
)

func validResumeRequest() ResumeRequest {
	return ResumeRequest{
		FullName:       "Ann Example",
		Email:          "ann@x.com",
		Phone:          "555-0100",
		Location:       "Lisbon, Portugal",
		Summary:        "Backend engineer with 8 years of experience.",
		WorkExperience: "Staff Engineer at Acme (2019-2025)",
		Education:      "BSc Computer Science",
		Skills:         "Go, Postgres, Kubernetes",
		TargetRole:     "Principal Engineer",
	}
}

func TestBuildResumePromptDeterministic(t *testing.T) {
	req := validResumeRequest()
	first := BuildResumePrompt(req)
	second := BuildResumePrompt(req)
	if first != second {
		t.Fatalf("identical input produced different prompts")
	}
}

func TestBuildResumePromptEmbedsAllFields(t *testing.T) {
	req := validResumeRequest()
	prompt := BuildResumePrompt(req)

	for _, want := range []string{
		req.FullName, req.Email, req.Phone, req.Location, req.Summary,
		req.WorkExperience, req.Education, req.Skills, req.TargetRole,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing field value %q", want)
		}
	}
	if !strings.Contains(prompt, "ATS-friendly") {
		t.Fatalf("prompt missing fixed formatting directives")
	}
	if !strings.Contains(prompt, "HTML format") {
		t.Fatalf("prompt missing output format directive")
	}
}

func TestBuildPortfolioPromptEmbedsStyleAndColors(t *testing.T) {
	req := PortfolioRequest{
		FullName:          "Ann Example",
		ProfessionalTitle: "Product Designer",
		Email:             "ann@x.com",
		Location:          "Lisbon",
		AboutMe:           "I design things.",
		Projects:          "Project A, Project B",
		Skills:            "Figma, CSS",
		Style:             "minimalist",
		ColorScheme:       "monochrome",
	}
	prompt := BuildPortfolioPrompt(req)

	if !strings.Contains(prompt, "minimalist design using the monochrome color scheme") {
		t.Fatalf("style/color directive not rendered: %q", prompt)
	}
	if !strings.Contains(prompt, req.AboutMe) || !strings.Contains(prompt, req.Projects) {
		t.Fatalf("portfolio content fields missing from prompt")
	}
}

func TestBuildModernPortfolioPromptUsesTheme(t *testing.T) {
	req := ModernPortfolioRequest{
		FullName:          "Ann Example",
		ProfessionalTitle: "Product Designer",
		Email:             "ann@x.com",
		Location:          "Lisbon",
		AboutMe:           "I design things.",
		Projects:          "Project A",
		Skills:            "Figma",
		Theme:             "dark",
		ColorScheme:       "neon",
	}
	prompt := BuildModernPortfolioPrompt(req)

	if !strings.Contains(prompt, "dark theme and neon color scheme") {
		t.Fatalf("theme directive not rendered")
	}
	if !strings.Contains(prompt, "ONLY the complete HTML") {
		t.Fatalf("modern prompt missing output directive")
	}
}

func TestMissingFieldsOrderAndNames(t *testing.T) {
	req := ResumeRequest{FullName: "Ann", Email: "ann@x.com"}
	got := req.MissingFields()
	want := []string{"phone", "location", "summary", "workExperience", "education", "skills", "targetRole"}
	if len(got) != len(want) {
		t.Fatalf("expected %d missing fields, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("missing fields out of order: got %v, want %v", got, want)
		}
	}
}

func TestMissingFieldsTreatsBlankAsMissing(t *testing.T) {
	req := validResumeRequest()
	req.Skills = "   "
	got := req.MissingFields()
	if len(got) != 1 || got[0] != "skills" {
		t.Fatalf("expected [skills], got %v", got)
	}
}

func TestMissingFieldsNoneForValidRequest(t *testing.T) {
	if got := validResumeRequest().MissingFields(); len(got) != 0 {
		t.Fatalf("expected no missing fields, got %v", got)
	}
}
