package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-event-calendar/internal/domain/event"
)

// eventRow はDBの行を表す構造体
type eventRow struct {
	ID              string    `db:"id"`
	OrganizerID     string    `db:"organizer_id"`
	Title           string    `db:"title"`
	DateTime        time.Time `db:"date_time"`
	MaxParticipants int       `db:"max_participants"`
	CreatedAt       time.Time `db:"created_at"`
}

// toEntity はeventRowをEventエンティティに変換する
// 参加者は registrations から復元するため空で返す
func (r *eventRow) toEntity() *event.Event {
	return &event.Event{
		ID:              r.ID,
		OrganizerID:     r.OrganizerID,
		Title:           r.Title,
		DateTime:        r.DateTime,
		MaxParticipants: r.MaxParticipants,
		ParticipantIDs:  []string{},
		CreatedAt:       r.CreatedAt,
	}
}

// EventRepository はイベントリポジトリのPostgreSQL実装
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository はEventRepositoryを作成する
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create はイベントを記録する
func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	query := `
		INSERT INTO events (id, organizer_id, title, date_time, max_participants, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query,
		e.ID, e.OrganizerID, e.Title, e.DateTime, e.MaxParticipants, e.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return event.ErrTitleNotUnique
		}
		return fmt.Errorf("イベント作成に失敗しました: %w", err)
	}
	return nil
}

// List はイベントを作成順に取得する
func (r *EventRepository) List(ctx context.Context) ([]*event.Event, error) {
	query := `
		SELECT id, organizer_id, title, date_time, max_participants, created_at
		FROM events
		ORDER BY seq
	`

	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("イベント一覧取得に失敗しました: %w", err)
	}

	events := make([]*event.Event, len(rows))
	for i := range rows {
		events[i] = rows[i].toEntity()
	}
	return events, nil
}

// インターフェースを満たしているか確認
var _ event.Repository = (*EventRepository)(nil)
