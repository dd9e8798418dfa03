package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-calendar/internal/application"
	"github.com/sanosuguru/go-event-calendar/internal/domain/event"
)

type EventHandler struct {
	eventService EventServiceInterface
}

func NewEventHandler(eventService EventServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

type CreateEventRequest struct {
	OrganizerID     string `json:"organizer_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title           string `json:"title" validate:"required" example:"Analytical Engine Meetup"`
	DateTime        string `json:"date_time" validate:"required" example:"2030-01-01T18:00:00+09:00"`
	MaxParticipants int    `json:"max_participants" validate:"min=0" example:"20"`
}

type EventResponse struct {
	ID               string   `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	OrganizerID      string   `json:"organizer_id"`
	Title            string   `json:"title" example:"Analytical Engine Meetup"`
	DateTime         string   `json:"date_time" example:"2030-01-01T18:00:00+09:00"`
	MaxParticipants  int      `json:"max_participants" example:"20"`
	ParticipantIDs   []string `json:"participant_ids"`
	ParticipantCount int      `json:"participant_count" example:"3"`
	CreatedAt        string   `json:"created_at" example:"2025-12-06T10:00:00+09:00"`
}

type AvailabilityResponse struct {
	EventID         string `json:"event_id"`
	Participants    int    `json:"participants" example:"3"`
	MaxParticipants int    `json:"max_participants" example:"20"`
	Remaining       int    `json:"remaining" example:"17"`
	Unlimited       bool   `json:"unlimited"`
}

func toEventResponse(e *event.Event) *EventResponse {
	ids := e.ParticipantIDs
	if ids == nil {
		ids = []string{}
	}
	return &EventResponse{
		ID:               e.ID,
		OrganizerID:      e.OrganizerID,
		Title:            e.Title,
		DateTime:         e.DateTime.Format(time.RFC3339),
		MaxParticipants:  e.MaxParticipants,
		ParticipantIDs:   ids,
		ParticipantCount: e.ParticipantCount(),
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

func toEventResponses(events []*event.Event) []*EventResponse {
	responses := make([]*EventResponse, len(events))
	for i, e := range events {
		responses[i] = toEventResponse(e)
	}
	return responses
}

// Create godoc
// @Summary イベントを作成
// @Description 新しいイベントを作成します（max_participants が 0 なら定員なし）
// @Tags events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "イベント情報"
// @Success 201 {object} EventResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req CreateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errorJSON(c, err)
	}

	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		return errorJSON(c, echo.NewHTTPError(http.StatusBadRequest, "開催日時の形式が不正です"))
	}

	e, err := h.eventService.CreateEvent(c.Request().Context(), application.CreateEventInput{
		OrganizerID:     req.OrganizerID,
		Title:           req.Title,
		DateTime:        dateTime,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toEventResponse(e))
}

// GetByID godoc
// @Summary イベントを取得
// @Tags events
// @Produce json
// @Param id path string true "イベントID"
// @Success 200 {object} EventResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetByID(c echo.Context) error {
	e, err := h.eventService.GetEventByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toEventResponse(e))
}

// List godoc
// @Summary イベント一覧を取得
// @Description 作成順に返します
// @Tags events
// @Produce json
// @Success 200 {array} EventResponse
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, toEventResponses(h.eventService.ListEvents(c.Request().Context())))
}

// Search godoc
// @Summary タイトルでイベントを検索
// @Tags events
// @Produce json
// @Param title query string true "タイトル（完全一致）"
// @Success 200 {object} EventResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /events/search [get]
func (h *EventHandler) Search(c echo.Context) error {
	e, err := h.eventService.GetEvent(c.Request().Context(), c.QueryParam("title"))
	if err != nil {
		return errorJSON(c, err)
	}
	if e == nil {
		return errorJSON(c, event.ErrEventNotFound)
	}
	return c.JSON(http.StatusOK, toEventResponse(e))
}

// Participants godoc
// @Summary イベントの参加者一覧
// @Description 参加イベント数の降順、姓・名の昇順で返します
// @Tags events
// @Produce json
// @Param id path string true "イベントID"
// @Success 200 {array} PersonResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /events/{id}/participants [get]
func (h *EventHandler) Participants(c echo.Context) error {
	persons, err := h.eventService.GetParticipantsForEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toPersonResponses(persons))
}

// Availability godoc
// @Summary イベントの参加枠の状況
// @Tags events
// @Produce json
// @Param id path string true "イベントID"
// @Success 200 {object} AvailabilityResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /events/{id}/availability [get]
func (h *EventHandler) Availability(c echo.Context) error {
	a, err := h.eventService.GetAvailability(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, AvailabilityResponse{
		EventID:         a.EventID,
		Participants:    a.Participants,
		MaxParticipants: a.MaxParticipants,
		Remaining:       a.Remaining,
		Unlimited:       a.Unlimited,
	})
}

// Cancel godoc
// @Summary イベントをキャンセル
// @Description キャンセルはサポートしていないため、存在するイベントに対しては常に 409 を返します
// @Tags events
// @Produce json
// @Param id path string true "イベントID"
// @Failure 404 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Router /events/{id}/cancel [post]
func (h *EventHandler) Cancel(c echo.Context) error {
	if err := h.eventService.CancelEvent(c.Request().Context(), c.Param("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
