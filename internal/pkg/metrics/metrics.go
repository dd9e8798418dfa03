package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics はアプリケーションのメトリクスを管理する
type Metrics struct {
	// HTTPリクエストの総数（method, path, status_code）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPリクエストのレイテンシ（method, path）
	HTTPRequestDuration *prometheus.HistogramVec

	// 参加登録操作の総数（operation: register/unregister, status: success/full/duplicate/not_registered/not_found/invalid/error）
	RegistrationsTotal *prometheus.CounterVec

	// イベント作成の総数（status: success/invalid/not_found/error）
	EventsCreatedTotal *prometheus.CounterVec

	// ジャーナル書き込み時間（entity: person/event/registration, status: success/failed）
	JournalWriteDuration *prometheus.HistogramVec

	// レジストリ上のエンティティ数（kind: events/persons/registrations）
	RegistryEntities *prometheus.GaugeVec
}

// New は新しいMetricsインスタンスを作成し、デフォルトレジストリに登録する
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry は指定したレジストリにメトリクスを登録する
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RegistrationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "registrations_total",
				Help: "Total number of registration and unregistration attempts",
			},
			[]string{"operation", "status"},
		),
		EventsCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "events_created_total",
				Help: "Total number of event creation attempts",
			},
			[]string{"status"},
		),
		JournalWriteDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "journal_write_duration_seconds",
				Help:    "Time spent writing registry changes to the journal",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"entity", "status"},
		),
		RegistryEntities: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "registry_entities",
				Help: "Current number of entities held by the registry",
			},
			[]string{"kind"},
		),
	}

	// レジストリに登録
	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.RegistrationsTotal,
		m.EventsCreatedTotal,
		m.JournalWriteDuration,
		m.RegistryEntities,
	)

	return m
}

// デフォルトのメトリクスインスタンス
var defaultMetrics *Metrics

// Init はデフォルトのメトリクスインスタンスを初期化する
func Init() *Metrics {
	defaultMetrics = New()
	return defaultMetrics
}

// Get はデフォルトのメトリクスインスタンスを返す
func Get() *Metrics {
	return defaultMetrics
}
