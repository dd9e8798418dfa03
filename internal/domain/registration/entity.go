package registration

import "time"

// Registration は人物のイベント参加登録を表す
// ジャーナルに記録される単位で、レジストリ上の参加者リストと対応する
type Registration struct {
	EventID      string
	PersonID     string
	RegisteredAt time.Time
}

// NewRegistration は新しい参加登録を作成する
func NewRegistration(eventID, personID string) *Registration {
	return &Registration{
		EventID:      eventID,
		PersonID:     personID,
		RegisteredAt: time.Now(),
	}
}
