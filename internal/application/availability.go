package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-calendar/internal/domain/event"
	redisinfra "github.com/sanosuguru/go-event-calendar/internal/infrastructure/redis"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/logger"
)

const participantCacheTTL = 30 * time.Second

// ParticipantCache はイベントの参加者数キャッシュ
type ParticipantCache interface {
	GetParticipantCount(ctx context.Context, eventID string) (int, error)
	SetParticipantCount(ctx context.Context, eventID string, count int, ttl time.Duration) error
	Invalidate(ctx context.Context, eventID string) error
}

// Availability はイベントの参加枠の状況
type Availability struct {
	EventID         string
	Participants    int
	MaxParticipants int
	Remaining       int
	Unlimited       bool
}

// GetAvailability はイベントの参加者数と残り枠を返す
// 定員なしのイベントでは Remaining は -1 になる
func (s *RegistryService) GetAvailability(ctx context.Context, eventID string) (*Availability, error) {
	if eventID == "" {
		return nil, event.ErrEventRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.eventsByID[eventID]
	if !ok {
		return nil, event.ErrEventNotFound
	}

	count := s.participantCountLocked(ctx, e)
	a := &Availability{
		EventID:         e.ID,
		Participants:    count,
		MaxParticipants: e.MaxParticipants,
		Remaining:       -1,
		Unlimited:       !e.HasLimit(),
	}
	if e.HasLimit() {
		a.Remaining = max(e.MaxParticipants-count, 0)
	}
	return a, nil
}

func (s *RegistryService) participantCountLocked(ctx context.Context, e *event.Event) int {
	// キャッシュから取得を試みる
	if s.cache != nil {
		count, err := s.cache.GetParticipantCount(ctx, e.ID)
		if err == nil {
			logger.Debug("キャッシュヒット", zap.String("event_id", e.ID), zap.Int("count", count))
			return count
		}
		if !errors.Is(err, redisinfra.ErrCacheMiss) {
			logger.Warn("キャッシュ取得エラー", zap.Error(err))
		}
	}

	count := e.ParticipantCount()

	if s.cache != nil {
		if err := s.cache.SetParticipantCount(ctx, e.ID, count, participantCacheTTL); err != nil {
			logger.Warn("キャッシュ保存エラー", zap.Error(err))
		}
	}
	return count
}

// invalidateLocked は参加者リストの変更後にキャッシュを無効化する
func (s *RegistryService) invalidateLocked(ctx context.Context, eventID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, eventID); err != nil {
		logger.Warn("キャッシュ無効化エラー", zap.String("event_id", eventID), zap.Error(err))
	}
}
