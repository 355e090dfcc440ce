package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/shouni/tattoo-stencil-kit/internal/config"
	"github.com/shouni/tattoo-stencil-kit/internal/logger"
	"github.com/shouni/tattoo-stencil-kit/internal/metrics"
	"github.com/shouni/tattoo-stencil-kit/internal/web"
	"github.com/shouni/tattoo-stencil-kit/pkg/adapters"
	"github.com/shouni/tattoo-stencil-kit/pkg/generator"
	"github.com/shouni/tattoo-stencil-kit/pkg/prompt"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configFile := flag.String("config", "", "path to a config file (yaml, json or toml)")
	flag.Parse()

	if err := run(*configFile); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(os.Stdout, cfg.Server.LogLevel, cfg.Server.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, err := newGenerator(ctx, cfg, log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv, err := web.NewServer(gen, log, metrics.NewRecorder(reg), reg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", httpServer.Addr, "model", gen.Model(), "language", cfg.Prompt.Language)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// newGenerator は設定から GeminiGenerator を組み立てます。
// APIキーが無い場合も起動は続け、生成リクエストごとに ConfigurationError を返します。
func newGenerator(ctx context.Context, cfg *config.Config, log *slog.Logger) (*generator.GeminiGenerator, error) {
	opts := []generator.Option{
		generator.WithModel(cfg.Gemini.Model),
		generator.WithLanguage(prompt.ParseLanguage(cfg.Prompt.Language)),
		generator.WithTimeout(cfg.Gemini.Timeout),
		generator.WithLogger(log),
	}
	if cfg.Server.Exclusive {
		opts = append(opts, generator.WithExclusive())
	}

	if cfg.Gemini.APIKey == "" {
		log.Warn("Gemini API key is not configured; generation requests will fail until it is set")
		return generator.NewGeminiGenerator("", nil, opts...)
	}

	client, err := adapters.NewGeminiClient(ctx, adapters.Config{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
	}, log)
	if err != nil {
		return nil, err
	}
	return generator.NewGeminiGenerator(cfg.Gemini.APIKey, client, opts...)
}
