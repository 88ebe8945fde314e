package generate

import "strings"

// ResumeRequest is the transient input for resume generation. Every field
// is required; nothing here is persisted.
type ResumeRequest struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	Summary        string `json:"summary"`
	WorkExperience string `json:"workExperience"`
	Education      string `json:"education"`
	Skills         string `json:"skills"`
	TargetRole     string `json:"targetRole"`
}

// MissingFields returns every absent required field in declaration order.
func (r ResumeRequest) MissingFields() []string {
	return missing([]requiredField{
		{"fullName", r.FullName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"location", r.Location},
		{"summary", r.Summary},
		{"workExperience", r.WorkExperience},
		{"education", r.Education},
		{"skills", r.Skills},
		{"targetRole", r.TargetRole},
	})
}

// PortfolioRequest is the transient input for classic portfolio generation.
type PortfolioRequest struct {
	FullName          string `json:"fullName"`
	ProfessionalTitle string `json:"professionalTitle"`
	Email             string `json:"email"`
	Location          string `json:"location"`
	AboutMe           string `json:"aboutMe"`
	Projects          string `json:"projects"`
	Skills            string `json:"skills"`
	Style             string `json:"style"`
	ColorScheme       string `json:"colorScheme"`
}

func (r PortfolioRequest) MissingFields() []string {
	return missing([]requiredField{
		{"fullName", r.FullName},
		{"professionalTitle", r.ProfessionalTitle},
		{"email", r.Email},
		{"location", r.Location},
		{"aboutMe", r.AboutMe},
		{"projects", r.Projects},
		{"skills", r.Skills},
		{"style", r.Style},
		{"colorScheme", r.ColorScheme},
	})
}

// ModernPortfolioRequest is the modern variant; it carries a theme instead
// of a style.
type ModernPortfolioRequest struct {
	FullName          string `json:"fullName"`
	ProfessionalTitle string `json:"professionalTitle"`
	Email             string `json:"email"`
	Location          string `json:"location"`
	AboutMe           string `json:"aboutMe"`
	Projects          string `json:"projects"`
	Skills            string `json:"skills"`
	Theme             string `json:"theme"`
	ColorScheme       string `json:"colorScheme"`
}

func (r ModernPortfolioRequest) MissingFields() []string {
	return missing([]requiredField{
		{"fullName", r.FullName},
		{"professionalTitle", r.ProfessionalTitle},
		{"email", r.Email},
		{"location", r.Location},
		{"aboutMe", r.AboutMe},
		{"projects", r.Projects},
		{"skills", r.Skills},
		{"theme", r.Theme},
		{"colorScheme", r.ColorScheme},
	})
}

type requiredField struct {
	name  string
	value string
}

func missing(fields []requiredField) []string {
	var out []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			out = append(out, f.name)
		}
	}
	return out
}
