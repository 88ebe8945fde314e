package generate

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"visioon-backend/internal/llm"
	"visioon-backend/internal/shared/server/middleware"
	"visioon-backend/internal/shared/server/respond"
	"visioon-backend/internal/shared/telemetry"
)

// Handler orchestrates the generation endpoints: validate, build the
// prompt, call the provider once, return html or a generic failure. All
// routes assume the auth middleware already resolved an identity.
type Handler struct {
	Gen llm.Client
}

func NewHandler(gen llm.Client) *Handler {
	return &Handler{Gen: gen}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-resume", h.resume)
	rg.POST("/generate-portfolio", h.portfolio)
	rg.POST("/generate-modern-portfolio", h.modernPortfolio)
}

func (h *Handler) resume(c *gin.Context) {
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if rejectMissing(c, req.MissingFields()) {
		return
	}
	h.generate(c, "resume", BuildResumePrompt(req), "Failed to generate resume. Please try again later.")
}

func (h *Handler) portfolio(c *gin.Context) {
	var req PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if rejectMissing(c, req.MissingFields()) {
		return
	}
	h.generate(c, "portfolio", BuildPortfolioPrompt(req), "Failed to generate portfolio. Please try again later.")
}

func (h *Handler) modernPortfolio(c *gin.Context) {
	var req ModernPortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if rejectMissing(c, req.MissingFields()) {
		return
	}
	h.generate(c, "modern-portfolio", BuildModernPortfolioPrompt(req), "Failed to generate modern portfolio. Please try again later.")
}

// rejectMissing fails fast with a 400 naming every missing field. The
// provider is never called for invalid input.
func rejectMissing(c *gin.Context, fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	respond.Error(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(fields, ", "))
	return true
}

func (h *Handler) generate(c *gin.Context, kind, prompt, failureMessage string) {
	html, err := h.Gen.Generate(c.Request.Context(), prompt)
	if err != nil {
		// Full provider detail stays server-side; the caller only ever
		// sees the generic failure message.
		telemetry.Error("generate.failed", map[string]any{
			"kind":       kind,
			"err":        err.Error(),
			"class":      classify(err),
			"request_id": middleware.RequestIDFromContext(c),
			"user_id":    middleware.UserIDFromContext(c),
		})
		respond.Error(c, http.StatusInternalServerError, failureMessage)
		return
	}
	respond.OK(c, gin.H{"html": html})
}

func classify(err error) string {
	var perr *llm.ProviderError
	switch {
	case errors.As(err, &perr):
		return "provider_error"
	case errors.Is(err, llm.ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, llm.ErrNotConfigured):
		return "not_configured"
	default:
		return "network_error"
	}
}
