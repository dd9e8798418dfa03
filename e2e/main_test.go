package e2e

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sanosuguru/go-event-calendar/internal/application"
	"github.com/sanosuguru/go-event-calendar/internal/config"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-calendar/internal/server"
)

// TestServer はE2Eテスト用のサーバー
type TestServer struct {
	Echo     *echo.Echo
	Registry *application.RegistryService
}

// NewTestServer はメモリ上のレジストリでサーバーを作成する
// journal が nil でなければ変更をジャーナルにも記録する
func NewTestServer(t *testing.T, journal *application.Journal) *TestServer {
	t.Helper()

	cfg := config.Load()
	cfg.Metrics = config.MetricsConfig{}

	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)
	registry := application.NewRegistryService(journal, nil, m)

	e := server.New(cfg, server.Deps{Registry: registry, Metrics: m, Gatherer: reg})
	return &TestServer{Echo: e, Registry: registry}
}

// Request はHTTPリクエストを実行
func (s *TestServer) Request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

// decode はレスポンスボディを v に読み込む
func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("レスポンスのデコードに失敗: %v (body=%s)", err, rec.Body.String())
	}
}
