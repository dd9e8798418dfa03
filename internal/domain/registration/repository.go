package registration

import "context"

// Repository は参加登録ジャーナルのインターフェース
type Repository interface {
	// Create は参加登録を記録する
	Create(ctx context.Context, r *Registration) error

	// Delete は参加登録を削除する
	Delete(ctx context.Context, eventID, personID string) error

	// List は参加登録を登録順に取得する
	List(ctx context.Context) ([]*Registration, error)
}
