package person

import "github.com/sanosuguru/go-event-calendar/internal/pkg/apperr"

// Person ドメインのエラー定義
var (
	ErrPersonRequired    = apperr.New(apperr.KindInvalidArgument, "人物の指定は必須です")
	ErrLastNameRequired  = apperr.New(apperr.KindInvalidArgument, "姓は必須です")
	ErrFirstNameRequired = apperr.New(apperr.KindInvalidArgument, "名は必須です")
	ErrPersonNotFound    = apperr.New(apperr.KindNotFound, "人物が見つかりません")
)
