package registration

import "github.com/sanosuguru/go-event-calendar/internal/pkg/apperr"

// Registration ドメインのエラー定義
var (
	ErrRegistrationNotFound  = apperr.New(apperr.KindNotFound, "参加登録が見つかりません")
	ErrDuplicateRegistration = apperr.New(apperr.KindNotAllowed, "参加登録が重複しています")
)
