package person

import "context"

// Repository は人物ジャーナルのインターフェース
type Repository interface {
	// Create は新しい人物を記録する
	Create(ctx context.Context, p *Person) error

	// List は記録された人物を作成順に取得する
	List(ctx context.Context) ([]*Person, error)
}
