package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sanosuguru/go-event-calendar/internal/config"
)

// MetricsBasicAuth は /metrics エンドポイント用の Basic 認証ミドルウェア
// ユーザーとパスワードの両方が設定されている場合のみ認証を要求する
func MetricsBasicAuth(cfg config.MetricsConfig) echo.MiddlewareFunc {
	// 認証設定がない場合はスキップ（パススルー）
	if !metricsAuthEnabled(cfg) {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return middleware.BasicAuth(func(username, password string, c echo.Context) (bool, error) {
		userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.User)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.Password)) == 1

		return userMatch && passMatch, nil
	})
}

func metricsAuthEnabled(cfg config.MetricsConfig) bool {
	return cfg.User != "" && cfg.Password != ""
}
