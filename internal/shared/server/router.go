package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kyc-backend/internal/documents"
	"kyc-backend/internal/extraction"
	"kyc-backend/internal/llm"
	"kyc-backend/internal/llm/openai"
	"kyc-backend/internal/shared/config"
	"kyc-backend/internal/shared/metrics"
	"kyc-backend/internal/shared/server/middleware"
	"kyc-backend/internal/shared/server/respond"
	"kyc-backend/internal/shared/storage/db"
	"kyc-backend/internal/shared/storage/object"
	localstore "kyc-backend/internal/shared/storage/object/local"
	s3store "kyc-backend/internal/shared/storage/object/s3"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
// It fails when the environment requires a database and none is reachable.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := buildStore(cfg)
	sqlDB, err := buildDB(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	var rawRepo extraction.RawRepo
	var profileRepo extraction.ProfileRepo
	if sqlDB != nil {
		rawRepo = &extraction.PGRawRepo{DB: sqlDB}
		profileRepo = &extraction.PGProfileRepo{DB: sqlDB}
	} else {
		rawRepo = extraction.NewMemoryRawRepo()
		profileRepo = extraction.NewMemoryProfileRepo()
	}

	extractionSvc := &extraction.Service{
		Vision:   buildVisionClient(cfg),
		Raw:      rawRepo,
		Profiles: profileRepo,
	}
	extractionHandler := extraction.NewHandler(extractionSvc)

	documentsSvc := &documents.Service{Store: store, PublicBaseURL: cfg.PublicBaseURL}
	documentsHandler := documents.NewHandler(documentsSvc)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	extractionHandler.RegisterRoutes(api)
	documentsHandler.RegisterRoutes(api)

	return r, nil
}

// buildDB returns a connected, migrated *sql.DB, or nil when the dev-like
// in-memory fallback applies. Outside dev-like environments a missing or
// unreachable database is a startup error, never a silent downgrade.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required when ENV=%s", cfg.Env)
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildStore(cfg config.Config) object.ObjectStore {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			log.Printf("failed to build s3 store, falling back to local: %v", err)
			return localstore.New(cfg.LocalStoreDir)
		}
		return store
	default:
		return localstore.New(cfg.LocalStoreDir)
	}
}

func buildVisionClient(cfg config.Config) llm.VisionClient {
	if cfg.OpenAIAPIKey == "" {
		log.Printf("OPENAI_API_KEY not set; extraction requests will fail until configured")
		return llm.PlaceholderClient{}
	}
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		log.Printf("failed to build openai client: %v", err)
		return llm.PlaceholderClient{}
	}
	return client
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
