package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"child-immunization-tracker/internal/adapters/auth/token"
	pg "child-immunization-tracker/internal/adapters/storage/postgres"
	"child-immunization-tracker/internal/config"
	"child-immunization-tracker/internal/platform/logger"
	"child-immunization-tracker/internal/router"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	opts := router.Options{
		DevMode:  cfg.IsDev(),
		Logger:   log,
		Location: loc,
	}

	if strings.TrimSpace(cfg.AuthSecret) != "" {
		mgr, err := token.New(token.Config{Secret: cfg.AuthSecret, Issuer: cfg.AuthIssuer, TTL: cfg.AuthTTL})
		if err != nil {
			return err
		}
		opts.AuthVerifier = mgr
		opts.TokenIssuer = mgr
	}

	if cfg.IsDev() {
		log.Warn("development mode: X-Debug-User-ID header is accepted as identity", nil)
	}

	var db *sql.DB
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		db, err = pg.Open(dsn)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		if err := pg.CreateSchema(parent, db); err != nil {
			return err
		}
		opts.DB = db
		log.Info("using postgres store", nil)
	} else {
		log.Info("using in-memory store", nil)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
}
