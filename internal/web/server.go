// Package web はデザイン入力フォームと生成 API を提供する HTTP 層です。
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shouni/tattoo-stencil-kit/internal/metrics"
	"github.com/shouni/tattoo-stencil-kit/pkg/domain"
	"github.com/shouni/tattoo-stencil-kit/pkg/generator"
)

//go:embed templates/*.html
var templateFS embed.FS

// maxBodyBytes はフォームと JSON の受信上限です。
const maxBodyBytes = 1 << 20

// Server はフォーム画面と生成 API のハンドラーを保持します。
type Server struct {
	generator generator.ImageGenerator
	logger    *slog.Logger
	recorder  *metrics.Recorder
	gatherer  prometheus.Gatherer
	page      *template.Template
}

// NewServer は依存関係を注入して Server を初期化します。
// gatherer が nil の場合は /metrics を公開しません。
func NewServer(gen generator.ImageGenerator, logger *slog.Logger, recorder *metrics.Recorder, gatherer prometheus.Gatherer) (*Server, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator (ImageGenerator) is required")
	}
	if recorder == nil {
		return nil, fmt.Errorf("recorder is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	return &Server{
		generator: gen,
		logger:    logger,
		recorder:  recorder,
		gatherer:  gatherer,
		page:      page,
	}, nil
}

// Routes はミドルウェアとルートを登録したルーターを返します。
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/generate", s.handleGenerateForm)
	r.Post("/api/generate", s.handleGenerateJSON)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			s.logger.ErrorContext(r.Context(), "Failed to write health check response", "error", err)
		}
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// generate は生成を 1 回実行し、結果をメトリクスに記録します。
func (s *Server) generate(r *http.Request, spec domain.DesignSpecification) (*domain.GeneratedImage, error) {
	start := time.Now()
	img, err := s.generator.GenerateImage(r.Context(), spec)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = string(generator.KindOf(err))
		if outcome == "" {
			outcome = "unknown"
		}
		// 内部の詳細はログにだけ残す
		s.logger.ErrorContext(r.Context(), "画像生成に失敗しました",
			"request_id", middleware.GetReqID(r.Context()),
			"kind", outcome,
			"error", err,
		)
	}
	s.recorder.Observe(outcome, time.Since(start))
	return img, err
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
		)
	})
}
