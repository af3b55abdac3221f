package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/league-simulator/internal/config"
	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/prediction"
	"github.com/riskibarqy/league-simulator/internal/domain/simulation"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
	"github.com/riskibarqy/league-simulator/internal/infrastructure/predictioncache"
	cacherepo "github.com/riskibarqy/league-simulator/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/league-simulator/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-simulator/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-simulator/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/league-simulator/internal/platform/cache"
	"github.com/riskibarqy/league-simulator/internal/platform/logging"
	"github.com/riskibarqy/league-simulator/internal/platform/resilience"
	"github.com/riskibarqy/league-simulator/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const startupTimeout = 10 * time.Second

// Server bundles the HTTP server with the resources it must release on shutdown.
type Server struct {
	*http.Server
	closers []func() error
}

// CloseResources releases database and Redis connections.
func (s *Server) CloseResources() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	srv := &Server{}
	teamRepo, fixtureRepo, err := buildRepositories(ctx, cfg, logger, srv)
	if err != nil {
		_ = srv.CloseResources()
		return nil, err
	}

	var predictionCache usecase.PredictionCache
	if cfg.RedisEnabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		srv.closers = append(srv.closers, rdb.Close)

		redisCache := predictioncache.NewRedisCache(rdb, cfg.RedisPredictionTTL, resilience.CircuitBreakerConfig{
			Enabled:          cfg.RedisCircuitEnabled,
			FailureThreshold: cfg.RedisCircuitFailureCount,
			OpenTimeout:      cfg.RedisCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.RedisCircuitHalfOpenMaxReq,
		})
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis unreachable at startup, predictions will be computed on demand", "addr", cfg.RedisAddr, "error", err)
		}
		predictionCache = redisCache
	}

	var simOpts []simulation.Option
	if cfg.SimulationSeed != nil {
		simOpts = append(simOpts, simulation.WithSeed(*cfg.SimulationSeed))
	}
	simulator := simulation.NewSimulator(simOpts...)
	predictor := prediction.NewPredictor(prediction.Config{
		Iterations:    cfg.PredictionIterations,
		Workers:       cfg.PredictionWorkers,
		Seed:          cfg.SimulationSeed,
		MinPlayedWeek: cfg.PredictionMinWeek,
	})

	predictionSvc := usecase.NewPredictionService(teamRepo, fixtureRepo, predictor, predictionCache, logger)
	handler := httpapi.NewHandler(
		usecase.NewTeamService(teamRepo),
		usecase.NewFixtureService(teamRepo, fixtureRepo, logger),
		usecase.NewSimulationService(teamRepo, fixtureRepo, simulator, logger),
		usecase.NewLeagueStandingService(teamRepo, fixtureRepo),
		predictionSvc,
		usecase.NewDashboardService(teamRepo, fixtureRepo, predictionSvc),
		logger,
	)

	srv.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("app wired",
		"storage_driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"redis_enabled", cfg.RedisEnabled,
		"seeded", cfg.SimulationSeed != nil,
		"prediction_iterations", cfg.PredictionIterations,
	)

	return srv, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger, srv *Server) (team.Repository, fixture.Repository, error) {
	var (
		teamRepo    team.Repository
		fixtureRepo fixture.Repository
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return nil, nil, err
		}
		srv.closers = append(srv.closers, db.Close)

		if err := db.PingContext(ctx); err != nil {
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("bootstrap seed teams: %w", err)
		}
		teamRepo = postgres.NewTeamRepository(db)
		fixtureRepo = postgres.NewFixtureRepository(db)
	default:
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		fixtureRepo = memory.NewFixtureRepository()
	}

	if !cfg.CacheEnabled {
		return teamRepo, fixtureRepo, nil
	}

	store := basecache.NewStore(cfg.CacheTTL)
	logger.Info("repository cache enabled", "ttl", cfg.CacheTTL.String())
	return cacherepo.NewTeamRepository(teamRepo, store), cacherepo.NewFixtureRepository(fixtureRepo, store), nil
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.ServiceName)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}
