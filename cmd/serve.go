package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"github.com/redis/go-redis/v9"

	"pfm-backend/config"
	httpLayer "pfm-backend/http"
	"pfm-backend/logging"
	"pfm-backend/repository"
	"pfm-backend/security"
	"pfm-backend/service"
)

type serveCmd struct{}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the HTTP API" }
func (*serveCmd) Usage() string {
	return `pfm serve

  Starts the HTTP API. Configuration comes from the environment
  (SERVER_PORT, REDIS_ADDR, LOG_LEVEL, ...).
`
}

func (*serveCmd) SetFlags(*flag.FlagSet) {}

func (*serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return subcommands.ExitFailure
	}
	logger := logging.New(cfg.Logging)

	stores, err := openStores(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to open stores", "error", err)
		return subcommands.ExitFailure
	}
	defer stores.close(logger)

	analysisService := service.NewAnalysisService(stores.accounts, stores.cache, cfg.Analysis.CacheTTL, logger)
	authService := service.NewAuthService(stores.users, security.NewBcryptHasher(cfg.Security.BcryptCost), logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.HTTP.RateLimitCapacity, cfg.HTTP.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(logger, httpLayer.RouterDependencies{
		Auth:     httpLayer.NewAuthHandler(authService, logger),
		Analysis: httpLayer.NewAnalysisHandler(analysisService, logger),
		Health:   stores.health,
		Limiter:  rateLimiter,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server stopped unexpectedly", "error", err)
		return subcommands.ExitFailure
	case sig := <-quit:
		logger.Info("received shutdown signal", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return subcommands.ExitFailure
	}

	logger.Info("server exited")
	return subcommands.ExitSuccess
}

type stores struct {
	accounts repository.AccountRepository
	users    repository.UserRepository
	cache    repository.CacheRepository
	health   httpLayer.HealthProber
	redis    *redis.Client
}

func (s stores) close(logger *slog.Logger) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Close(); err != nil {
		logger.Warn("closing redis client failed", "error", err)
	}
}

// openStores connects to redis when REDIS_ADDR is set and falls back to the
// in-memory stores otherwise. The demo account is seeded when missing.
func openStores(ctx context.Context, logger *slog.Logger, cfg config.Config) (stores, error) {
	demo := repository.DemoAccount()
	demo.Currency = cfg.Analysis.DefaultCurrency

	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR not set, using in-memory stores")
		accounts := repository.NewAccountRepositoryMemory()
		if err := accounts.Save(ctx, demo); err != nil {
			return stores{}, err
		}
		return stores{
			accounts: accounts,
			users:    repository.NewUserRepositoryMemory(),
			cache:    repository.NewMockCache(),
		}, nil
	}

	client, err := repository.NewRedisClient(ctx, repository.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return stores{}, err
	}

	accounts := repository.NewRedisAccountRepository(client)
	if _, err := accounts.Fetch(ctx, demo.ID); errors.Is(err, repository.ErrNotFound) {
		if err := accounts.Save(ctx, demo); err != nil {
			_ = client.Close()
			return stores{}, fmt.Errorf("seed demo account: %w", err)
		}
	}

	logger.Info("connected to redis", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
	return stores{
		accounts: accounts,
		users:    repository.NewRedisUserRepository(client),
		cache:    repository.NewRedisCache(client, "pfm:"),
		health:   repository.RedisHealth{Client: client},
		redis:    client,
	}, nil
}
