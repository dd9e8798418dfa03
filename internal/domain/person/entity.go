package person

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Person はイベントの主催者・参加者を表す
// EventIDs は参加登録済みイベントへの逆参照（登録順）
type Person struct {
	ID          string
	LastName    string
	FirstName   string
	MailAddress string
	PhoneNumber string
	EventIDs    []string
	CreatedAt   time.Time
}

// NewPerson は新しい人物を作成する
func NewPerson(lastName, firstName string) *Person {
	return &Person{
		ID:        uuid.NewString(),
		LastName:  lastName,
		FirstName: firstName,
		EventIDs:  []string{},
		CreatedAt: time.Now(),
	}
}

// Validate は人物の検証を行う
func (p *Person) Validate() error {
	if strings.TrimSpace(p.LastName) == "" {
		return ErrLastNameRequired
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return ErrFirstNameRequired
	}
	return nil
}

// AddEvent はイベントを未登録の場合のみ追加し、追加できたかを返す
func (p *Person) AddEvent(eventID string) bool {
	if p.HasEvent(eventID) {
		return false
	}
	p.EventIDs = append(p.EventIDs, eventID)
	return true
}

// RemoveEvent はイベントを削除し、削除できたかを返す
func (p *Person) RemoveEvent(eventID string) bool {
	i := slices.Index(p.EventIDs, eventID)
	if i < 0 {
		return false
	}
	p.EventIDs = slices.Delete(p.EventIDs, i, i+1)
	return true
}

// HasEvent はイベントに登録済みかを返す
func (p *Person) HasEvent(eventID string) bool {
	return slices.Contains(p.EventIDs, eventID)
}

// EventCount は登録済みイベント数を返す
func (p *Person) EventCount() int {
	return len(p.EventIDs)
}

// Clone はロック外へ渡すためのコピーを返す
func (p *Person) Clone() *Person {
	c := *p
	c.EventIDs = slices.Clone(p.EventIDs)
	if c.EventIDs == nil {
		c.EventIDs = []string{}
	}
	return &c
}
