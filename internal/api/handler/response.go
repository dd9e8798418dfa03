package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-calendar/internal/api"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/logger"
)

// errorJSON はエラーを種別に応じたステータスのJSONで返す
func errorJSON(c echo.Context, err error) error {
	code := api.StatusCode(err)
	message := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}
	if code >= http.StatusInternalServerError {
		logger.Error("ハンドラーエラー", zap.String("path", c.Request().URL.Path), zap.Error(err))
		message = "内部サーバーエラー"
	}
	return c.JSON(code, api.ErrorResponse{Error: message, Code: code})
}

// bindAndValidate はリクエストを読み込み検証する
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "リクエストの形式が不正です")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}
