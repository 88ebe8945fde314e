package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visioon-backend/internal/analyses"
	googleauth "visioon-backend/internal/auth"
	"visioon-backend/internal/generate"
	"visioon-backend/internal/shared/auth"
	"visioon-backend/internal/shared/config"
	"visioon-backend/internal/shared/server/middleware"
	"visioon-backend/internal/shared/server/respond"
	"visioon-backend/internal/users"
)

// RouterDeps carries the wired handlers the router mounts.
type RouterDeps struct {
	Config          config.Config
	Resolver        auth.Resolver
	UsersHandler    *users.Handler
	GenerateHandler *generate.Handler
	AnalysisHandler *analyses.Handler
	GoogleAuth      *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// Generation routes sit behind the identity chain; signup, login, the OAuth
// flow and content analysis do not.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}

	protected := api.Group("", middleware.Auth(deps.Resolver))
	if deps.GenerateHandler != nil {
		deps.GenerateHandler.RegisterRoutes(protected)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
