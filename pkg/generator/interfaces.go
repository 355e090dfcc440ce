package generator

import (
	"context"

	"github.com/shouni/tattoo-stencil-kit/pkg/domain"
	"google.golang.org/genai"
)

// ImageGenerator はプレゼンテーション層が利用する統合窓口です。
type ImageGenerator interface {
	GenerateImage(ctx context.Context, spec domain.DesignSpecification) (*domain.GeneratedImage, error)
}

// ContentGenerator は Gemini の generateContent 呼び出しを抽象化するインターフェースです。
// *genai.Models はこのインターフェースをそのまま満たします。
type ContentGenerator interface {
	// GenerateContent は 1 回のリクエストを送信し、単一のレスポンスを返します。
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}
