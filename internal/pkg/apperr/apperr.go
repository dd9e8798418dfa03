// Package apperr はドメインエラーの種別を表す
package apperr

import "errors"

// Kind はエラーの種別
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalidArgument は入力値が不正
	KindInvalidArgument
	// KindNotAllowed は業務ルール上許可されない操作
	KindNotAllowed
	// KindNotFound は対象がレジストリに存在しない
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotAllowed:
		return "not_allowed"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error は種別付きのドメインエラー
type Error struct {
	Kind    Kind
	Message string
}

// 種別だけで照合するためのセンチネル
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrNotAllowed      = &Error{Kind: KindNotAllowed}
	ErrNotFound        = &Error{Kind: KindNotFound}
)

// New は種別付きエラーを作成する
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is はメッセージなしのターゲットに対して種別で一致判定する
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// KindOf はエラーチェーンから種別を取り出す
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
