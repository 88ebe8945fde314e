package generate

import "fmt"

// Prompt builders are pure functions: every field is embedded verbatim and
// the formatting directives are fixed, so identical input always yields an
// identical prompt. Nothing is cached; a prompt is rebuilt per request.

const resumePromptTemplate = `Generate a professional resume for %s who is applying for a %s position.

Personal Details:
- Name: %s
- Email: %s
- Phone: %s
- Location: %s

Professional Summary:
%s

Work Experience:
%s

Education:
%s

Skills:
%s

Format the resume in a clean, professional layout. Include all relevant sections such as profile summary, work experience, education, skills, and contact information. Make sure the content is ATS-friendly.
Provide the result in HTML format that can be directly displayed or converted to PDF.`

// BuildResumePrompt renders the resume generation instruction.
func BuildResumePrompt(req ResumeRequest) string {
	return fmt.Sprintf(resumePromptTemplate,
		req.FullName,
		req.TargetRole,
		req.FullName,
		req.Email,
		req.Phone,
		req.Location,
		req.Summary,
		req.WorkExperience,
		req.Education,
		req.Skills,
	)
}

const portfolioPromptTemplate = `Generate a professional portfolio website for %s who is a %s.

Personal Details:
- Name: %s
- Professional Title: %s
- Email: %s
- Location: %s

About Me:
%s

Projects:
%s

Skills:
%s

Style Preference: %s
Color Scheme: %s

Generate a complete portfolio website with a %s design using the %s color scheme.
Include sections for About Me, Projects, Skills, and Contact Information.
Provide the result as HTML and CSS code that can be directly used in a web application.`

// BuildPortfolioPrompt renders the classic portfolio instruction.
func BuildPortfolioPrompt(req PortfolioRequest) string {
	return fmt.Sprintf(portfolioPromptTemplate,
		req.FullName,
		req.ProfessionalTitle,
		req.FullName,
		req.ProfessionalTitle,
		req.Email,
		req.Location,
		req.AboutMe,
		req.Projects,
		req.Skills,
		req.Style,
		req.ColorScheme,
		req.Style,
		req.ColorScheme,
	)
}

const modernPortfolioPromptTemplate = `Generate a modern, visually appealing portfolio website for %s who is a %s.

Personal Details:
- Name: %s
- Professional Title: %s
- Email: %s
- Location: %s

About Me:
%s

Projects:
%s

Skills:
%s

Theme: %s
Color Scheme: %s

Create a complete, standalone HTML portfolio with the following specifications:
1. Use modern HTML5, CSS3 (with Flexbox and Grid), and optional vanilla JavaScript
2. Design should be visually stunning with a %s theme and %s color scheme
3. Must be fully responsive for mobile, tablet, and desktop
4. Include attention-grabbing animations using CSS transitions/animations
5. Use modern UI principles with clean typography, adequate white space, and visual hierarchy
6. Incorporate sections for: hero/intro, about me, projects (with images placeholders), skills, and contact
7. Include social media icons and links (placeholder URLs)
8. Add subtle parallax effects or scroll animations
9. Use Font Awesome or similar icon set (via CDN)
10. Include Google Fonts for beautiful typography

Provide ONLY the complete HTML with embedded CSS and JavaScript.`

// BuildModernPortfolioPrompt renders the modern portfolio instruction.
func BuildModernPortfolioPrompt(req ModernPortfolioRequest) string {
	return fmt.Sprintf(modernPortfolioPromptTemplate,
		req.FullName,
		req.ProfessionalTitle,
		req.FullName,
		req.ProfessionalTitle,
		req.Email,
		req.Location,
		req.AboutMe,
		req.Projects,
		req.Skills,
		req.Theme,
		req.ColorScheme,
		req.Theme,
		req.ColorScheme,
	)
}
