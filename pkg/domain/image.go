package domain

import "encoding/base64"

// ダウンロード時に提示する固定のファイル名です。
const (
	DownloadFilename = "tattoo-stencil.png"
	SaveFilename     = "tattoo-stencil-saved.png"
)

// GeneratedImage は生成された画像データとその MIME タイプです。
// 生成リクエストごとに新しく作られ、以後変更されません。
type GeneratedImage struct {
	Data     []byte
	MimeType string
}

// DataURI は画像をそのまま表示・ダウンロードに使える data URI に変換します。
func (img GeneratedImage) DataURI() string {
	return "data:" + img.MimeType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
