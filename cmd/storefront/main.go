// Package main boots the storefront HTTP server.
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

	"github.com/nikolayk812/storefront-demo/internal/config"
	"github.com/nikolayk812/storefront-demo/internal/httpapi"
	"github.com/nikolayk812/storefront-demo/internal/logging"
	"github.com/nikolayk812/storefront-demo/internal/repository"
	"github.com/nikolayk812/storefront-demo/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("storefront", os.Args[1:])
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := logging.New("storefront", cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logging.New: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := repository.NewCatalog(repository.SampleProducts())
	if err != nil {
		return fmt.Errorf("repository.NewCatalog: %w", err)
	}

	opts := []service.Option{service.WithLogger(logger)}
	if cfg.StrictQty {
		opts = append(opts, service.WithQtyPolicy(service.StrictQty))
	}
	engine := service.New(repository.NewCart(repository.NewStore()), catalog, opts...)

	handler := httpapi.NewHandler(engine, logger)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           httpapi.NewRouter(handler, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server running", zap.String("addr", srv.Addr), zap.Bool("strict_qty", cfg.StrictQty))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown requested")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}
