package imgutil

import (
	"net/http"
	"strings"
)

// DetectMIMEType はバイト列の先頭から MIME タイプを判定します。
// パラメータ部分（"; charset=..." など）は取り除いて返します。
func DetectMIMEType(data []byte) string {
	mimeType := http.DetectContentType(data)
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return mimeType
}

// IsImageMIMEType は MIME タイプが画像を表すかどうかを返します。
func IsImageMIMEType(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/")
}
