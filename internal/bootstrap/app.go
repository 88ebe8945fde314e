package bootstrap

import (
	"context"
	"database/sql"

	"github.com/gin-gonic/gin"

	"visioon-backend/internal/analyses"
	googleauth "visioon-backend/internal/auth"
	"visioon-backend/internal/generate"
	"visioon-backend/internal/llm"
	"visioon-backend/internal/llm/deepseek"
	"visioon-backend/internal/llm/gemini"
	sharedauth "visioon-backend/internal/shared/auth"
	"visioon-backend/internal/shared/config"
	"visioon-backend/internal/shared/server"
	"visioon-backend/internal/shared/storage/db"
	"visioon-backend/internal/shared/telemetry"
	"visioon-backend/internal/users"
)

// App is the wired application: router plus the resources it owns.
type App struct {
	Router *gin.Engine
	DB     *sql.DB
}

// Close releases owned resources.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}

// Build wires the whole service from config. The storage backend and the
// generation provider are both chosen here, once, at boot; handlers only
// ever see the interfaces.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	database := buildDB(ctx, cfg)

	var repo users.Repo
	if database != nil {
		repo = &users.PGRepo{DB: database}
	} else {
		repo = users.NewMemoryRepo()
	}

	sessions := sharedauth.NewSessions(cfg.SessionSecret, 0)
	resolver := buildResolver(cfg, sessions)

	router := server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Resolver:        resolver,
		UsersHandler:    users.NewHandler(users.NewService(repo), sessions),
		GenerateHandler: generate.NewHandler(buildGenerator(cfg)),
		AnalysisHandler: analyses.NewHandler(analyses.Placeholder{}),
		GoogleAuth: googleauth.NewGoogleService(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
			cfg.UIRedirectURL,
			sessions,
		),
	})

	return &App{Router: router, DB: database}, nil
}

// buildResolver assembles the identity chain. The hosted-provider resolver
// sits first and costs a live round trip to the provider for every bearer
// token it sees, so it only joins the chain when Google OAuth is configured;
// local session tokens terminate at the session verifier either way.
func buildResolver(cfg config.Config, sessions *sharedauth.Sessions) sharedauth.Chain {
	var chain sharedauth.Chain
	if cfg.GoogleClientID != "" {
		chain = append(chain, googleauth.NewProviderResolver())
	}
	return append(chain, sessions)
}

// buildDB connects and migrates the credential store. Any failure degrades
// to the in-memory backend rather than failing boot; the process always
// comes up, possibly without persistence.
func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	if cfg.UseMemoryStore {
		telemetry.Info("bootstrap.store", map[string]any{"backend": "memory", "reason": "USE_IN_MEMORY_DB"})
		return nil
	}
	if cfg.DatabaseURL == "" {
		telemetry.Info("bootstrap.store", map[string]any{"backend": "memory", "reason": "no DATABASE_URL"})
		return nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		telemetry.Warn("bootstrap.store_fallback", map[string]any{"err": err.Error()})
		return nil
	}
	if err := db.RunMigrations(ctx, database); err != nil {
		telemetry.Warn("bootstrap.migrate_fallback", map[string]any{"err": err.Error()})
		database.Close()
		return nil
	}

	telemetry.Info("bootstrap.store", map[string]any{"backend": "postgres"})
	return database
}

// buildGenerator picks the provider client from config. A missing API key
// yields the placeholder client so the rest of the API stays up.
func buildGenerator(cfg config.Config) llm.Client {
	switch cfg.GenProvider {
	case "deepseek":
		client, err := deepseek.NewClient(cfg.DeepSeekAPIKey, cfg.GenModel, cfg.GenTimeout)
		if err != nil {
			telemetry.Warn("bootstrap.generator_placeholder", map[string]any{"provider": "deepseek", "err": err.Error()})
			return llm.PlaceholderClient{}
		}
		return client
	default:
		client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GenModel, cfg.GenTimeout)
		if err != nil {
			telemetry.Warn("bootstrap.generator_placeholder", map[string]any{"provider": "gemini", "err": err.Error()})
			return llm.PlaceholderClient{}
		}
		return client
	}
}
