package generator

import (
	"errors"
	"fmt"
)

// Kind は生成失敗の分類です。
type Kind string

const (
	KindConfiguration     Kind = "ConfigurationError"
	KindServiceCallFailed Kind = "ServiceCallFailed"
	KindEmptyResult       Kind = "EmptyResult"
	KindBusy              Kind = "Busy"
)

// 利用者に見せてよい固定メッセージ。内部の詳細は Err 側にのみ保持します。
var userMessages = map[Kind]string{
	KindConfiguration:     "The image service is not configured.",
	KindServiceCallFailed: "The call to the image service failed.",
	KindEmptyResult:       "No image was produced by the service.",
	KindBusy:              "A generation is already in progress.",
}

const genericMessage = "An unexpected error occurred."

// GenerationError は分類、利用者向けメッセージ、原因を持つエラーです。
type GenerationError struct {
	Kind    Kind
	Message string
	Err     error
}

// 種別ごとの比較用エラー。errors.Is は Kind だけを見て一致を判定します。
var (
	ErrConfiguration     = &GenerationError{Kind: KindConfiguration, Message: userMessages[KindConfiguration]}
	ErrServiceCallFailed = &GenerationError{Kind: KindServiceCallFailed, Message: userMessages[KindServiceCallFailed]}
	ErrEmptyResult       = &GenerationError{Kind: KindEmptyResult, Message: userMessages[KindEmptyResult]}
	ErrBusy              = &GenerationError{Kind: KindBusy, Message: userMessages[KindBusy]}
)

func newError(kind Kind, cause error) *GenerationError {
	return &GenerationError{Kind: kind, Message: userMessages[kind], Err: cause}
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) Is(target error) bool {
	t, ok := target.(*GenerationError)
	return ok && t != nil && t.Kind == e.Kind
}

// KindOf はエラー連鎖から Kind を取り出します。GenerationError でなければ空文字です。
func KindOf(err error) Kind {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

// UserMessage は画面にそのまま表示できるメッセージを返します。
func UserMessage(err error) string {
	var ge *GenerationError
	if errors.As(err, &ge) && ge.Message != "" {
		return ge.Message
	}
	return genericMessage
}
