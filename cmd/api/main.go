package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/BruksfildServices01/land-broker/internal/audit"
	"github.com/BruksfildServices01/land-broker/internal/auth"
	"github.com/BruksfildServices01/land-broker/internal/config"
	dbpkg "github.com/BruksfildServices01/land-broker/internal/db"
	infraRepo "github.com/BruksfildServices01/land-broker/internal/infra/repository"
	"github.com/BruksfildServices01/land-broker/internal/infra/memory"
	"github.com/BruksfildServices01/land-broker/internal/logging"
	"github.com/BruksfildServices01/land-broker/internal/middleware"
	"github.com/BruksfildServices01/land-broker/internal/ratelimit"
	"github.com/BruksfildServices01/land-broker/internal/routes"
)

func main() {
	cfg := config.Load()

	addr := pflag.String("addr", cfg.Addr(), "listen address")
	seed := pflag.Bool("seed", false, "create the admin user and default locations before serving")
	inMemory := pflag.Bool("in-memory", false, "keep all data in process memory instead of PostgreSQL")
	pflag.Parse()

	level := slog.LevelInfo
	if cfg.GinMode == gin.DebugMode {
		level = slog.LevelDebug
	}
	log := logging.NewJSON(os.Stdout, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, *addr, *seed, *inMemory); err != nil {
		log.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	cfg *config.Config,
	log logging.Logger,
	addr string,
	seed bool,
	inMemory bool,
) error {

	// ======================================================
	// STORES
	// ======================================================
	var (
		stores    routes.Stores
		auditSink audit.Sink
	)

	if inMemory {
		store := memory.NewStore()
		stores = routes.Stores{
			Users:     store,
			Locations: store,
			Lands:     store,
			AuditLogs: store,
			Health:    store,
		}
		auditSink = store
		log.Warn(ctx, "using in-memory store; data is lost on exit")
	} else {
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		auditLogger := audit.New(db)
		stores = routes.Stores{
			Users:     infraRepo.NewUserGormRepository(db),
			Locations: infraRepo.NewLocationGormRepository(db),
			Lands:     infraRepo.NewLandGormRepository(db),
			AuditLogs: auditLogger,
			Health:    dbpkg.NewHealth(db),
		}
		auditSink = auditLogger
	}

	if seed {
		admin, err := dbpkg.Seed(ctx, stores.Users, stores.Locations, dbpkg.SeedAdmin{
			Email:    cfg.SeedAdminEmail,
			Password: cfg.SeedAdminPassword,
			Name:     cfg.SeedAdminName,
		})
		if err != nil {
			return err
		}
		log.Info(ctx, "seed complete", "admin_email", admin.Email)
	}

	// ======================================================
	// LOGIN THROTTLE
	// ======================================================
	var limiter ratelimit.Limiter = ratelimit.Noop{}
	if cfg.RedisURL != "" {
		client, err := ratelimit.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		limiter = ratelimit.NewRedisLimiter(client, "login:", cfg.LoginMaxAttempts, cfg.LoginWindow)
	}

	dispatcher := audit.NewDispatcher(auditSink, log.With("component", "audit"))

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	routes.RegisterRoutes(r, routes.Dependencies{
		Stores:  stores,
		Tokens:  auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
		Limiter: limiter,
		Audit:   dispatcher,
		Log:     log,
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "server running", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info(shutdownCtx, "shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return dispatcher.Close(shutdownCtx)
}
