package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanosuguru/go-event-calendar/internal/api"
	"github.com/sanosuguru/go-event-calendar/internal/api/handler"
	"github.com/sanosuguru/go-event-calendar/internal/api/middleware"
	"github.com/sanosuguru/go-event-calendar/internal/application"
	"github.com/sanosuguru/go-event-calendar/internal/config"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/metrics"
)

// Deps はサーバー構築に必要な依存
// Metrics が nil の場合はHTTPメトリクスを収集せず /metrics も公開しない
type Deps struct {
	Registry *application.RegistryService
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// New はルーティング済みのEchoインスタンスを作成する
func New(cfg *config.Config, deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupMiddleware(e, deps.Metrics)

	healthHandler := handler.NewHealthHandler()
	personHandler := handler.NewPersonHandler(deps.Registry)
	eventHandler := handler.NewEventHandler(deps.Registry)
	registrationHandler := handler.NewRegistrationHandler(deps.Registry)

	e.GET("/health", healthHandler.Check)

	if deps.Metrics != nil {
		gatherer := deps.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		e.GET("/metrics",
			echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})),
			middleware.MetricsBasicAuth(cfg.Metrics),
		)
	}

	v1 := e.Group("/api/v1")

	// Persons
	v1.POST("/persons", personHandler.Create)
	v1.GET("/persons", personHandler.List)
	v1.GET("/persons/:id", personHandler.GetByID)
	v1.GET("/persons/:id/events", personHandler.ListEvents)
	v1.GET("/persons/:id/events/count", personHandler.CountEvents)

	// Events
	v1.POST("/events", eventHandler.Create)
	v1.GET("/events", eventHandler.List)
	v1.GET("/events/search", eventHandler.Search)
	v1.GET("/events/:id", eventHandler.GetByID)
	v1.GET("/events/:id/participants", eventHandler.Participants)
	v1.GET("/events/:id/availability", eventHandler.Availability)
	v1.POST("/events/:id/cancel", eventHandler.Cancel)

	// Registrations
	v1.POST("/events/:id/registrations", registrationHandler.Register)
	v1.DELETE("/events/:id/registrations/:person_id", registrationHandler.Unregister)

	return e
}
