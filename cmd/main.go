// Package main provides entry point for the customer registry.
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

	"go.uber.org/zap"

	"customer-registry/internal/config"
	"customer-registry/internal/handler"
	"customer-registry/internal/logger"
	"customer-registry/internal/registry"
	"customer-registry/internal/store"
	"customer-registry/internal/validation"
)

// Run is the testable entrypoint for the application.
func Run(ctx context.Context) error {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()
	log.Info("Starting customer registry",
		zap.String("store", cfg.StoreDriver),
		zap.String("phone_region", cfg.PhoneRegion))

	s, err := store.New(ctx, store.Config{
		Driver:      cfg.StoreDriver,
		Path:        cfg.StorePath,
		Key:         cfg.StoreKey,
		RedisURL:    cfg.RedisURL,
		DatabaseURL: cfg.DatabaseURL,
	}, log)
	if err != nil {
		log.Error("failed to open store", zap.Error(err))
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Warn("failed to close store", zap.Error(err))
		}
	}()

	v, err := validation.New(cfg.PhoneRegion)
	if err != nil {
		return fmt.Errorf("build validator: %w", err)
	}

	reg := registry.New(ctx, s, v, log)
	h := handler.New(log, reg)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info("Listening", zap.String("addr", cfg.HTTPAddr))

	select {
	case <-ctx.Done():
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
		return fmt.Errorf("http server: %w", err)
	}

	log.Info("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx); err != nil {
		os.Exit(1)
	}
}
