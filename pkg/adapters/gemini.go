package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// Config は Gemini クライアントの接続設定です。
type Config struct {
	APIKey string
	// BaseURL はエンドポイントの上書き用です。空なら SDK の既定値を使います。
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiClient は genai.Models を包み、generator.ContentGenerator を満たすアダプターです。
type GeminiClient struct {
	models *genai.Models
	logger *slog.Logger
}

// NewGeminiClient は APIキーから genai クライアントを生成します。この時点では通信しません。
func NewGeminiClient(ctx context.Context, cfg Config, logger *slog.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("APIKey is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("Geminiクライアントの初期化に失敗しました: %w", err)
	}

	return &GeminiClient{
		models: client.Models,
		logger: logger,
	}, nil
}

// GenerateContent は generateContent を 1 回だけ呼び出します。再試行は行いません。
func (c *GeminiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		c.logger.DebugContext(ctx, "generateContent が失敗しました", "model", model, "elapsed", time.Since(start), "error", err)
		return nil, err
	}

	c.logger.DebugContext(ctx, "generateContent が完了しました",
		"model", model,
		"elapsed", time.Since(start),
		"candidates", len(resp.Candidates),
	)
	return resp, nil
}
