package event

import "github.com/sanosuguru/go-event-calendar/internal/pkg/apperr"

// Event ドメインのエラー定義
var (
	ErrEventRequired          = apperr.New(apperr.KindInvalidArgument, "イベントの指定は必須です")
	ErrOrganizerRequired      = apperr.New(apperr.KindInvalidArgument, "主催者は必須です")
	ErrTitleRequired          = apperr.New(apperr.KindInvalidArgument, "タイトルは必須です")
	ErrTitleNotUnique         = apperr.New(apperr.KindInvalidArgument, "タイトルは一意である必要があります")
	ErrDateTimeNotInFuture    = apperr.New(apperr.KindInvalidArgument, "開催日時は未来である必要があります")
	ErrInvalidMaxParticipants = apperr.New(apperr.KindInvalidArgument, "定員は0以上である必要があります")
)

var (
	ErrEventNotFound = apperr.New(apperr.KindNotFound, "イベントが見つかりません")
)

var (
	ErrEventFull            = apperr.New(apperr.KindNotAllowed, "参加者数が定員に達しています")
	ErrAlreadyRegistered    = apperr.New(apperr.KindNotAllowed, "既に参加登録されています")
	ErrNotRegistered        = apperr.New(apperr.KindNotAllowed, "このイベントに参加登録されていません")
	ErrEventAlreadyCanceled = apperr.New(apperr.KindNotAllowed, "イベントは既にキャンセルされています")
)
