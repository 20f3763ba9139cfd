package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/matchodds/internal/app"
	"github.com/riskibarqy/matchodds/internal/config"
	"github.com/riskibarqy/matchodds/internal/observability"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
)

const (
	shutdownTimeout    = 30 * time.Second
	jobCleanupInterval = 5 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}
	pprofServer, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	srv := application.Server

	go application.RunJobCleanup(ctx, jobCleanupInterval)

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "timezone", cfg.Location.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	exitCode := 0
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		exitCode = 1
	}
	if err := application.Close(shutdownCtx); err != nil {
		logger.Error("app close failed", "error", err)
		exitCode = 1
	}
	if err := observability.StopPprofServer(pprofServer, logger, 5*time.Second); err != nil {
		logger.Error("pprof shutdown failed", "error", err)
	}
	if err := stopProfiler(); err != nil {
		logger.Error("pyroscope stop failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("uptrace shutdown failed", "error", err)
	}

	logger.Info("http server stopped")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
