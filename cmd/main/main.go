package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"price-analyzer/internal/config"
	"price-analyzer/internal/prices/model"
	"price-analyzer/internal/prices/service"
	"price-analyzer/internal/report"
	"price-analyzer/internal/shell"
	serverhttp "price-analyzer/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	ds, skipped, err := service.NewLoader(logger).Load(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("load prices")
	}
	if len(skipped) > 0 {
		logger.Info().Int("skipped", len(skipped)).Msg("some files or rows were skipped, see warnings above")
	}

	if err := report.ExportHTML(cfg.OutputFile, ds); err != nil {
		logger.Error().Err(err).Msg("export html")
	} else {
		logger.Info().Str("file", cfg.OutputFile).Int("records", ds.Len()).Msg("report written")
	}

	switch cfg.Mode {
	case config.ModeHTTP:
		serve(cfg, ds, logger)
	default:
		if err := shell.New(ds, os.Stdin, os.Stdout).Run(); err != nil {
			logger.Fatal().Err(err).Msg("shell")
		}
	}
}

func serve(cfg config.Config, ds *model.Dataset, logger zerolog.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           serverhttp.NewRouter(ds, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
