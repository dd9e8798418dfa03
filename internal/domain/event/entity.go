package event

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event はイベントエンティティを表す
// MaxParticipants が 0 のときは定員なし、正の値のときは定員付きイベント
type Event struct {
	ID              string
	OrganizerID     string
	Title           string
	DateTime        time.Time
	MaxParticipants int
	ParticipantIDs  []string
	CreatedAt       time.Time
}

// NewEvent は新しいイベントを作成する
func NewEvent(organizerID, title string, dateTime time.Time, maxParticipants int) *Event {
	return &Event{
		ID:              uuid.NewString(),
		OrganizerID:     organizerID,
		Title:           title,
		DateTime:        dateTime,
		MaxParticipants: maxParticipants,
		ParticipantIDs:  []string{},
		CreatedAt:       time.Now(),
	}
}

// Validate はイベントの検証を行う
// 開催日時は now より厳密に後でなければならない
func (e *Event) Validate(now time.Time) error {
	if e.OrganizerID == "" {
		return ErrOrganizerRequired
	}
	if e.Title == "" {
		return ErrTitleRequired
	}
	if !e.DateTime.After(now) {
		return ErrDateTimeNotInFuture
	}
	if e.MaxParticipants < 0 {
		return ErrInvalidMaxParticipants
	}
	return nil
}

// HasLimit は定員付きイベントかを返す
func (e *Event) HasLimit() bool {
	return e.MaxParticipants > 0
}

// IsFull は定員に達しているかを返す（定員なしの場合は常に false）
func (e *Event) IsFull() bool {
	return e.HasLimit() && len(e.ParticipantIDs) >= e.MaxParticipants
}

// Remaining は残り枠を返す（定員なしの場合は -1）
func (e *Event) Remaining() int {
	if !e.HasLimit() {
		return -1
	}
	return max(e.MaxParticipants-len(e.ParticipantIDs), 0)
}

// ParticipantCount は参加者数を返す
func (e *Event) ParticipantCount() int {
	return len(e.ParticipantIDs)
}

// AddParticipant は未登録の場合のみ参加者を追加する
// 定員チェックは行わない
func (e *Event) AddParticipant(personID string) bool {
	if e.HasParticipant(personID) {
		return false
	}
	e.ParticipantIDs = append(e.ParticipantIDs, personID)
	return true
}

// RemoveParticipant は参加者を削除し、削除できたかを返す
func (e *Event) RemoveParticipant(personID string) bool {
	i := slices.Index(e.ParticipantIDs, personID)
	if i < 0 {
		return false
	}
	e.ParticipantIDs = slices.Delete(e.ParticipantIDs, i, i+1)
	return true
}

// HasParticipant は参加者に含まれるかを返す
func (e *Event) HasParticipant(personID string) bool {
	return slices.Contains(e.ParticipantIDs, personID)
}

// Cancel はイベントのキャンセル
// キャンセル機能は提供しておらず、常にエラーを返す
func (e *Event) Cancel() error {
	return ErrEventAlreadyCanceled
}

// Clone はロック外へ渡すためのコピーを返す
func (e *Event) Clone() *Event {
	c := *e
	c.ParticipantIDs = slices.Clone(e.ParticipantIDs)
	if c.ParticipantIDs == nil {
		c.ParticipantIDs = []string{}
	}
	return &c
}

// IsBlankTitle はタイトルが空白のみかを返す
func IsBlankTitle(title string) bool {
	return strings.TrimSpace(title) == ""
}
