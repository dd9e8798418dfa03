package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-calendar/internal/application"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/logger"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/metrics"
)

// StatsSource はレジストリの件数を返すインターフェース
type StatsSource interface {
	Stats(ctx context.Context) application.Stats
}

// StatsReporter はレジストリの件数を定期的にゲージへ反映するワーカー
type StatsReporter struct {
	source   StatsSource
	metrics  *metrics.Metrics
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewStatsReporter は新しいレポーターを作成
func NewStatsReporter(source StatsSource, m *metrics.Metrics, interval time.Duration) *StatsReporter {
	return &StatsReporter{
		source:   source,
		metrics:  m,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start はレポーターを開始
// 開始直後に一度反映し、以降は interval ごとに反映する
func (r *StatsReporter) Start(ctx context.Context) {
	logger.Info("統計レポーター開始", zap.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer close(r.doneCh)

	r.report(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("統計レポーター停止（コンテキストキャンセル）")
			return
		case <-r.stopCh:
			logger.Info("統計レポーター停止（シグナル受信）")
			return
		case <-ticker.C:
			r.report(ctx)
		}
	}
}

// Stop はレポーターを停止
func (r *StatsReporter) Stop() {
	close(r.stopCh)
	<-r.doneCh
}

// report はレジストリの件数をゲージに反映
func (r *StatsReporter) report(ctx context.Context) {
	st := r.source.Stats(ctx)

	r.metrics.RegistryEntities.WithLabelValues("events").Set(float64(st.Events))
	r.metrics.RegistryEntities.WithLabelValues("persons").Set(float64(st.Persons))
	r.metrics.RegistryEntities.WithLabelValues("registrations").Set(float64(st.Registrations))

	logger.Debug("レジストリ統計を反映",
		zap.Int("events", st.Events),
		zap.Int("persons", st.Persons),
		zap.Int("registrations", st.Registrations),
	)
}
