package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crmdesk-backend/internal/api"
	"crmdesk-backend/internal/auth"
	"crmdesk-backend/internal/config"
	"crmdesk-backend/internal/database"
	"crmdesk-backend/internal/logging"
)

const (
	shutdownTimeout      = 10 * time.Second
	limiterPruneInterval  = 5 * time.Minute
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "crmdesk:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(os.Stderr, cfg.Log.Format, cfg.Log.Level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info(ctx, "opening database", "path", cfg.DBPath)
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	sessions := database.NewSessionRepo(db)
	authSvc := auth.NewService(database.NewUserRepo(db), sessions, cfg.SessionTTL, log)

	limiter := auth.NewRateLimiter(cfg.Login.MaxAttempts, cfg.Login.Window, cfg.Login.Block)
	if limiter.Enabled() {
		go limiter.Run(ctx, limiterPruneInterval)
	}

	go auth.NewSweeper(sessions, cfg.SweepInterval, log).Run(ctx)

	e := api.NewServer(api.Deps{
		DB:           db,
		Schema:       database.NewBootstrapper(db, log),
		Auth:         authSvc,
		Limiter:      limiter,
		Log:          log,
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		log.Info(context.Background(), "shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error(shutdownCtx, "shutdown", "error", err)
		}
	}()

	log.Info(ctx, "starting crmdesk backend", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	<-stopped
	log.Info(context.Background(), "server stopped")
	return nil
}
