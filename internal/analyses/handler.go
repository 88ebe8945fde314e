package analyses

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"visioon-backend/internal/extract"
	"visioon-backend/internal/shared/server/middleware"
	"visioon-backend/internal/shared/server/respond"
	"visioon-backend/internal/shared/telemetry"
)

// Handler serves the content analysis endpoint.
type Handler struct {
	Analyzer Analyzer
}

func NewHandler(analyzer Analyzer) *Handler {
	return &Handler{Analyzer: analyzer}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze-content", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	resumeFile, resumeErr := c.FormFile("resume")
	portfolioFile, portfolioErr := c.FormFile("portfolio")
	if resumeErr != nil {
		resumeFile = nil
	}
	if portfolioErr != nil {
		portfolioFile = nil
	}

	if resumeFile == nil && portfolioFile == nil {
		respond.Error(c, http.StatusBadRequest, "No content provided for analysis")
		return
	}

	resumeText := extractUpload(c, "resume", resumeFile)
	portfolioText := extractUpload(c, "portfolio", portfolioFile)

	result, err := h.Analyzer.Analyze(c.Request.Context(), resumeText, portfolioText)
	if err != nil {
		telemetry.Error("analyses.failed", map[string]any{
			"err":        err.Error(),
			"request_id": middleware.RequestIDFromContext(c),
		})
		respond.Error(c, http.StatusInternalServerError, "Failed to analyze content")
		return
	}
	respond.OK(c, result)
}

// extractUpload pulls text out of an uploaded file. Extraction failures are
// logged and treated as empty content rather than failing the request.
func extractUpload(c *gin.Context, field string, fh *multipart.FileHeader) string {
	if fh == nil {
		return ""
	}
	f, err := fh.Open()
	if err != nil {
		logExtractFailure(c, field, err)
		return ""
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		logExtractFailure(c, field, err)
		return ""
	}

	text, err := extract.TextFromBytes(data, fh.Header.Get("Content-Type"), fh.Filename)
	if err != nil {
		logExtractFailure(c, field, err)
		return ""
	}
	return text
}

func logExtractFailure(c *gin.Context, field string, err error) {
	telemetry.Warn("analyses.extract_failed", map[string]any{
		"field":      field,
		"err":        err.Error(),
		"request_id": middleware.RequestIDFromContext(c),
	})
}
