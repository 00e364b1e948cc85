// @title       vet-clinic API
// @version     1.0
// @description Historias clínicas veterinarias.
// @BasePath    /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vet-clinic/internal/adapters/auth/jwtauth"
	"vet-clinic/internal/adapters/auth/password"
	"vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/config"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vet-clinic: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	level := logger.ParseLevel(cfg.LogLevel)
	format := logger.ParseFormat(cfg.LogFormat)
	accessLog := logger.New(logger.Options{
		Level: level, Format: format, App: cfg.AppName,
		Output: logger.Output(cfg.AccessLogPath, os.Stdout),
	})
	errorLog := logger.New(logger.Options{
		Level: level, Format: format, App: cfg.AppName,
		Output: logger.Output(cfg.ErrorLogPath, os.Stderr),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DatabaseDSN != "" {
		db, err = postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer db.Close()

		if cfg.MigrateOnStart {
			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
		}
		errorLog.Info("using postgres storage", nil)
	} else {
		errorLog.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	tokens, err := jwtauth.NewManager(jwtauth.Config{
		Secret:    cfg.JWTSecret,
		Algorithm: cfg.JWTAlgorithm,
		TTL:       cfg.TokenTTL,
	})
	if err != nil {
		return err
	}

	h := router.NewRouter(router.Options{
		Tokens:         tokens,
		Hasher:         password.NewHasher(cfg.BcryptCost),
		DB:             db,
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
		Workers:        cfg.Workers,
		AccessLogger:   accessLog,
		ErrorLogger:    errorLog,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errorLog.Info("starting server", map[string]any{"addr": cfg.HTTPAddr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	errorLog.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
