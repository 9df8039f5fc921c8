package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/recipe-genie/backend/config"
	"github.com/recipe-genie/backend/internal/api"
	"github.com/recipe-genie/backend/internal/database"
	"github.com/recipe-genie/backend/internal/router"
	"github.com/recipe-genie/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	db     *gorm.DB
	http   *http.Server
	engine http.Handler
}

// New wires the full service graph and creates a server instance. All
// client handles are constructed here and passed to the components that
// need them; nothing reaches for process-wide state.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis only backs the idempotent-response cache; run without it if
	// it is not configured or unreachable.
	var redisClient *redis.Client
	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: failed to connect to Redis, idempotent replay disabled: %v", err)
			redisClient = nil
		}
	}

	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3: %w", err)
	}
	if err := s3Config.SetupBucketPolicy(ctx); err != nil {
		log.Printf("Warning: failed to apply bucket policy: %v", err)
	}

	llmService, err := service.NewLLMService(cfg)
	if err != nil {
		return nil, err
	}
	imageService, err := service.NewImageService(cfg, s3Config)
	if err != nil {
		return nil, err
	}

	pipeline := service.NewPipelineService(llmService, imageService)
	quota := service.NewQuotaService(db)
	subscriptions := service.NewSubscriptionService(db)
	cache := service.NewResultCache(redisClient)

	engine := router.SetupRouter(
		api.NewRecipeHandler(pipeline, cache),
		api.NewSubscribeHandler(subscriptions),
		quota,
	)

	return &Server{
		cfg:    cfg,
		db:     db,
		engine: engine,
	}, nil
}

// Start starts the server
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
