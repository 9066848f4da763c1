package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ezycar/booking-api/internal/api"
	"github.com/ezycar/booking-api/internal/audit"
	"github.com/ezycar/booking-api/internal/auth"
	"github.com/ezycar/booking-api/internal/config"
	"github.com/ezycar/booking-api/internal/db"
	"github.com/ezycar/booking-api/internal/logger"
	"github.com/ezycar/booking-api/internal/metrics"
	"github.com/ezycar/booking-api/internal/repository/postgres"
	"github.com/ezycar/booking-api/internal/services"
	"github.com/ezycar/booking-api/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	rec := audit.NewRecorder(repos.AuditLogs, wp)
	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	userSvc := services.NewUserService(repos.Users)
	providerSvc := services.NewProviderService(repos.Providers, rec)
	bookingSvc := services.NewBookingService(repos.Bookings, repos.Providers, rec)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:         cfg,
		TokenMgr:    tm,
		UserSvc:     userSvc,
		ProviderSvc: providerSvc,
		BookingSvc:  bookingSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	wp.Stop()
}
