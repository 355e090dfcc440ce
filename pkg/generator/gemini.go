package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/shouni/tattoo-stencil-kit/pkg/domain"
	"github.com/shouni/tattoo-stencil-kit/pkg/prompt"
)

// GeminiGenerator はデザイン指定からプロンプトを組み立て、Gemini に 1 回だけ画像生成を依頼します。
// 再試行は行いません。
type GeminiGenerator struct {
	apiKey    string
	client    ContentGenerator
	model     string
	language  prompt.Language
	timeout   time.Duration
	logger    *slog.Logger
	exclusive bool
	inflight  *semaphore.Weighted
}

// NewGeminiGenerator は認証情報とクライアントを注入して GeminiGenerator を初期化します。
// apiKey が空の場合に限り client は nil を許容し、生成時に KindConfiguration を返します。
func NewGeminiGenerator(apiKey string, client ContentGenerator, opts ...Option) (*GeminiGenerator, error) {
	if apiKey != "" && client == nil {
		return nil, fmt.Errorf("client (ContentGenerator) is required")
	}

	g := &GeminiGenerator{
		apiKey:   apiKey,
		client:   client,
		model:    DefaultModel,
		language: prompt.LanguageEnglish,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.exclusive {
		g.inflight = semaphore.NewWeighted(1)
	}
	return g, nil
}

// Model は使用中のモデル名を返します。
func (g *GeminiGenerator) Model() string {
	return g.model
}

// GenerateImage はデザイン指定から画像を 1 枚生成します。
// 失敗時は常に *GenerationError を返します。
func (g *GeminiGenerator) GenerateImage(ctx context.Context, spec domain.DesignSpecification) (*domain.GeneratedImage, error) {
	// 通信より前に認証情報を確認する
	if g.apiKey == "" || g.client == nil {
		err := newError(KindConfiguration, errors.New("gemini API key is not set"))
		g.logger.ErrorContext(ctx, "APIキーが設定されていません", "error", err)
		return nil, err
	}

	if g.inflight != nil {
		if !g.inflight.TryAcquire(1) {
			g.logger.WarnContext(ctx, "生成処理が実行中のため新しいリクエストを拒否しました")
			return nil, newError(KindBusy, nil)
		}
		defer g.inflight.Release(1)
	}

	text := prompt.BuildPromptIn(g.language, spec)
	g.logger.DebugContext(ctx, "プロンプトを生成しました", "model", g.model, "language", g.language, "prompt", text)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	contents, config := buildRequest(text)
	resp, err := g.client.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API の呼び出しに失敗しました", "model", g.model, "error", err)
		return nil, newError(KindServiceCallFailed, fmt.Errorf("Gemini画像生成エラー: %w", err))
	}

	img, err := parseToResponse(resp)
	if err != nil {
		if errors.Is(err, errInvalidResponse) {
			g.logger.ErrorContext(ctx, "Geminiからの有効な応答がありませんでした", "model", g.model, "error", err)
			return nil, newError(KindServiceCallFailed, err)
		}
		g.logger.WarnContext(ctx, "画像データが見つかりませんでした", "model", g.model, "error", err)
		return nil, newError(KindEmptyResult, err)
	}

	g.logger.InfoContext(ctx, "画像を生成しました", "model", g.model, "mime_type", img.MimeType, "bytes", len(img.Data))
	return img, nil
}
