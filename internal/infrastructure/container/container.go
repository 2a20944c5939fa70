package container

import (
	"fmt"

	"github.com/gdugdh24/reunion-backend/internal/config"
	"github.com/gdugdh24/reunion-backend/internal/delivery/http"
	"github.com/gdugdh24/reunion-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/reunion-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/reunion-backend/internal/infrastructure/database"
	"github.com/gdugdh24/reunion-backend/internal/infrastructure/server"
	"github.com/gdugdh24/reunion-backend/internal/logger"
	"github.com/gdugdh24/reunion-backend/internal/matching"
	"github.com/gdugdh24/reunion-backend/internal/repository"
	"github.com/gdugdh24/reunion-backend/internal/repository/cache"
	"github.com/gdugdh24/reunion-backend/internal/repository/postgres"
	"github.com/gdugdh24/reunion-backend/internal/usecase/auth"
	"github.com/gdugdh24/reunion-backend/internal/usecase/match"
	matchingusecase "github.com/gdugdh24/reunion-backend/internal/usecase/matching"
	"github.com/gdugdh24/reunion-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg.Database.RunMigrations {
		if err := database.RunMigrations(cfg.Database.GetURL()); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
	}

	candidateCache := newCandidateCache(redisClient, cfg)

	// Initialize repositories
	profileRepo := postgres.NewProfileRepository(db)
	targetRepo := postgres.NewTargetPersonRepository(db)
	matchRepo := postgres.NewMatchRepository(db)

	engine := matching.NewEngine()

	// Initialize use cases
	tokenService := auth.NewTokenService(cfg.Auth.JWTSecret)
	profileUseCase := profile.NewProfileUseCase(profileRepo, targetRepo, candidateCache)
	matchingUseCase := matchingusecase.NewMatchingUseCase(profileRepo, targetRepo, candidateCache, engine)
	matchUseCase := match.NewMatchUseCase(matchRepo, profileRepo, targetRepo, engine)

	// Initialize handlers
	router := http.NewRouter(
		handler.NewProfileHandler(profileUseCase),
		handler.NewMatchingHandler(matchingUseCase),
		handler.NewMatchHandler(matchUseCase),
		middleware.NewAuthMiddleware(tokenService),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.NewServer(&cfg.Server, router.Setup())

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

func newCandidateCache(client *redis.Client, cfg *config.Config) repository.CandidateCache {
	if client == nil {
		logger.Info().Msg("redis disabled, candidate results are not cached")
		return cache.NewNoopCandidateCache()
	}
	return cache.NewRedisCandidateCache(client, cfg.Matching.CacheTTL)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn().Err(err).Msg("error closing redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
