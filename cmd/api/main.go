package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/georgemunganga/vendor-accounts/internal/config"
	"github.com/georgemunganga/vendor-accounts/internal/database"
	"github.com/georgemunganga/vendor-accounts/internal/logger"
	"github.com/georgemunganga/vendor-accounts/internal/metrics"
	"github.com/georgemunganga/vendor-accounts/internal/modules/auth"
	"github.com/georgemunganga/vendor-accounts/internal/modules/firm"
	"github.com/georgemunganga/vendor-accounts/internal/modules/vendor"
)

const serviceName = "vendors"

func main() {
	if err := run(); err != nil {
		logger.New(serviceName, slog.LevelInfo).Error("vendor api failed", "error", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(serviceName, cfg.LogLevel)
	log.Info("configuration loaded", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx, log); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	tokens, err := auth.NewJWTIssuer(cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("configure token issuer: %w", err)
	}
	hasher := auth.NewBcryptHasher(auth.PasswordCost)

	// ── Router ──────────────────────────────────────────────
	recorder := metrics.New()
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.Middleware(log))
	router.Use(recorder.Middleware)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", recorder.Handler())

	// ── Vendors & Firms ─────────────────────────────────────
	firmRepo := firm.NewSQLRepository(db)
	vendorRepo := vendor.NewSQLRepository(db)
	vendorService := vendor.NewService(vendorRepo, firmRepo, hasher, tokens, log)
	vendor.NewHandler(vendorService, log).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errorCh := make(chan error, 1)
	go func() {
		log.Info("vendor api starting", "addr", srv.Addr, "driver", db.Driver())
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		log.Info("vendor api stopped")
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	}
	return nil
}
