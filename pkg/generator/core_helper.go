package generator

import (
	"errors"
	"fmt"

	"github.com/shouni/tattoo-stencil-kit/pkg/domain"
	"github.com/shouni/tattoo-stencil-kit/pkg/imgutil"
	"google.golang.org/genai"
)

var (
	errInvalidResponse = errors.New("invalid response")
	errNoImageData     = errors.New("no image data")
)

// buildRequest はプロンプトを唯一のテキストパートとする 1 件のコンテンツと、
// 画像のみを応答として要求する設定を組み立てます。
func buildRequest(text string) ([]*genai.Content, *genai.GenerateContentConfig) {
	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityImage)},
	}
	return contents, config
}

// parseToResponse は最初の候補のパートを順に調べ、最初に見つかったインライン画像を返します。
// MIME タイプが画像でないインラインデータは読み飛ばします。
func parseToResponse(resp *genai.GenerateContentResponse) (*domain.GeneratedImage, error) {
	if resp == nil {
		return nil, errInvalidResponse
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, fmt.Errorf("%w: no candidates", errNoImageData)
	}

	// 現在の仕様では、Geminiからの最初の候補 (Candidate) のみを利用する。
	candidate := resp.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mimeType := part.InlineData.MIMEType
			if mimeType == "" {
				mimeType = imgutil.DetectMIMEType(part.InlineData.Data)
			}
			if !imgutil.IsImageMIMEType(mimeType) {
				continue
			}
			return &domain.GeneratedImage{Data: part.InlineData.Data, MimeType: mimeType}, nil
		}
	}

	// 安全フィルター等によるブロックの確認
	if reason := candidate.FinishReason; reason != "" && reason != genai.FinishReasonUnspecified && reason != genai.FinishReasonStop {
		return nil, fmt.Errorf("%w (FinishReason: %s)", errNoImageData, reason)
	}
	return nil, errNoImageData
}
