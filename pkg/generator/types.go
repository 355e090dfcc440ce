package generator

import (
	"log/slog"
	"time"

	"github.com/shouni/tattoo-stencil-kit/pkg/prompt"
)

const (
	// DefaultModel は画像出力に対応した Gemini モデルです。
	DefaultModel = "gemini-2.5-flash-image"
)

// Option は GeminiGenerator の任意設定です。
type Option func(*GeminiGenerator)

// WithModel は使用するモデル名を上書きします。空文字は無視されます。
func WithModel(model string) Option {
	return func(g *GeminiGenerator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithLanguage はプロンプトの言語を指定します。
func WithLanguage(lang prompt.Language) Option {
	return func(g *GeminiGenerator) {
		g.language = lang
	}
}

// WithTimeout は 1 回の呼び出しに期限を設けます。0 以下は期限なしです。
func WithTimeout(d time.Duration) Option {
	return func(g *GeminiGenerator) {
		g.timeout = d
	}
}

// WithLogger はログ出力先を指定します。
func WithLogger(l *slog.Logger) Option {
	return func(g *GeminiGenerator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithExclusive は同時に 1 件だけ生成を許可します。
// 実行中に届いた呼び出しは待たずに KindBusy で失敗します。
func WithExclusive() Option {
	return func(g *GeminiGenerator) {
		g.exclusive = true
	}
}
