package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/generatedresumes"
	"resume-builder/internal/llm"
	"resume-builder/internal/optimize"
	"resume-builder/internal/pdf"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/shared/telemetry"
)

// Version is reported by the API info route.
const Version = "1.0.0"

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Store     object.ObjectStore
	Index     generatedresumes.Repo
	Optimizer resumes.Optimizer
	PDF       resumes.PDFGenerator
}

// BuildDeps wires storage, the file index, the optimizer and the PDF
// generator from config. The returned func releases held resources.
func BuildDeps(ctx context.Context, cfg config.Config) (Deps, func(), error) {
	var (
		store object.ObjectStore
		err   error
	)
	switch cfg.ObjectStoreType {
	case "s3":
		store, err = s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		store, err = localstore.New(cfg.LocalStoreDir)
	}
	if err != nil {
		return Deps{}, func() {}, fmt.Errorf("object store %s: %w", cfg.ObjectStoreType, err)
	}

	cleanup := func() {}
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.PoolOptions()))
		if err != nil {
			telemetry.Warn("db.unavailable", map[string]any{"error": err, "fallback": "memory"})
		} else if err := db.RunMigrations(ctx, dbConn); err != nil {
			telemetry.Warn("db.migrate_failed", map[string]any{"error": err, "fallback": "memory"})
			_ = dbConn.Close()
		} else {
			sqlDB = dbConn
			cleanup = func() { _ = sqlDB.Close() }
		}
	}

	var index generatedresumes.Repo
	if sqlDB != nil {
		index = &generatedresumes.PGRepo{DB: sqlDB}
	} else {
		index = generatedresumes.NewMemoryRepo()
	}

	preferred, _ := llm.ParseProvider(cfg.LLMProvider)
	return Deps{
		Store:     store,
		Index:     index,
		Optimizer: optimize.New(LLMCredentials(cfg), preferred),
		PDF:       pdf.NewGenerator(cfg.PDFRenderer, cfg.ChromePath),
	}, cleanup, nil
}

// LLMCredentials extracts provider settings from config.
func LLMCredentials(cfg config.Config) llm.Credentials {
	return llm.Credentials{
		OpenAI:    llm.ProviderCredentials{APIKey: cfg.OpenAIAPIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
		Anthropic: llm.ProviderCredentials{APIKey: cfg.AnthropicAPIKey, Model: cfg.AnthropicModel, BaseURL: cfg.AnthropicBaseURL},
		Gemini:    llm.ProviderCredentials{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL},
	}
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	svc := &resumes.Service{
		Optimizer: deps.Optimizer,
		PDF:       deps.PDF,
		Store:     deps.Store,
		Index:     deps.Index,
	}

	r.GET("/", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"name":    "AI Resume Builder API",
			"version": Version,
			"status":  "running",
			"docs":    "/api/resume/templates",
		})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	resumes.NewHandler(svc).RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
