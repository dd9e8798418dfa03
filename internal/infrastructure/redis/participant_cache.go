package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheMiss = errors.New("キャッシュが見つかりません")
)

// ParticipantCache はイベントの参加者数をキャッシュする
type ParticipantCache struct {
	client *redis.Client
	prefix string
}

// NewParticipantCache は新しいParticipantCacheインスタンスを作成する
func NewParticipantCache(client *redis.Client) *ParticipantCache {
	return &ParticipantCache{client: client, prefix: "events:participants"}
}

// GetParticipantCount はイベントの参加者数をキャッシュから取得する
func (c *ParticipantCache) GetParticipantCount(ctx context.Context, eventID string) (int, error) {
	val, err := c.client.Get(ctx, c.key(eventID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrCacheMiss
		}
		return 0, fmt.Errorf("キャッシュ取得に失敗: %w", err)
	}
	return val, nil
}

// SetParticipantCount はイベントの参加者数をキャッシュに保存する
func (c *ParticipantCache) SetParticipantCount(ctx context.Context, eventID string, count int, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(eventID), count, ttl).Err(); err != nil {
		return fmt.Errorf("キャッシュ保存に失敗: %w", err)
	}
	return nil
}

// Invalidate はイベントのキャッシュを無効化する
func (c *ParticipantCache) Invalidate(ctx context.Context, eventID string) error {
	if err := c.client.Del(ctx, c.key(eventID)).Err(); err != nil {
		return fmt.Errorf("キャッシュ無効化に失敗: %w", err)
	}
	return nil
}

func (c *ParticipantCache) key(eventID string) string {
	return fmt.Sprintf("%s:%s", c.prefix, eventID)
}
