package event

import "context"

// Repository はイベントジャーナルのインターフェース
type Repository interface {
	// Create は新しいイベントを記録する
	Create(ctx context.Context, event *Event) error

	// List は記録されたイベントを作成順に取得する（参加者は含まない）
	List(ctx context.Context) ([]*Event, error)
}
