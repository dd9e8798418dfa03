package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-calendar/internal/application"
	"github.com/sanosuguru/go-event-calendar/internal/domain/person"
)

type PersonHandler struct {
	personService PersonServiceInterface
}

func NewPersonHandler(personService PersonServiceInterface) *PersonHandler {
	return &PersonHandler{personService: personService}
}

type CreatePersonRequest struct {
	LastName    string `json:"last_name" validate:"required" example:"Lovelace"`
	FirstName   string `json:"first_name" validate:"required" example:"Ada"`
	MailAddress string `json:"mail_address" validate:"omitempty,email" example:"ada@example.com"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=32" example:"+44-20-0000-0000"`
}

type PersonResponse struct {
	ID          string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	LastName    string `json:"last_name" example:"Lovelace"`
	FirstName   string `json:"first_name" example:"Ada"`
	MailAddress string `json:"mail_address,omitempty" example:"ada@example.com"`
	PhoneNumber string `json:"phone_number,omitempty"`
	EventCount  int    `json:"event_count" example:"3"`
	CreatedAt   string `json:"created_at" example:"2025-12-06T10:00:00+09:00"`
}

type CountResponse struct {
	Count int `json:"count" example:"3"`
}

func toPersonResponse(p *person.Person) *PersonResponse {
	return &PersonResponse{
		ID:          p.ID,
		LastName:    p.LastName,
		FirstName:   p.FirstName,
		MailAddress: p.MailAddress,
		PhoneNumber: p.PhoneNumber,
		EventCount:  p.EventCount(),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func toPersonResponses(persons []*person.Person) []*PersonResponse {
	responses := make([]*PersonResponse, len(persons))
	for i, p := range persons {
		responses[i] = toPersonResponse(p)
	}
	return responses
}

// Create godoc
// @Summary 人物を登録
// @Tags persons
// @Accept json
// @Produce json
// @Param request body CreatePersonRequest true "人物情報"
// @Success 201 {object} PersonResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /persons [post]
func (h *PersonHandler) Create(c echo.Context) error {
	var req CreatePersonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errorJSON(c, err)
	}

	p, err := h.personService.CreatePerson(c.Request().Context(), application.CreatePersonInput{
		LastName:    req.LastName,
		FirstName:   req.FirstName,
		MailAddress: req.MailAddress,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toPersonResponse(p))
}

// GetByID godoc
// @Summary 人物を取得
// @Tags persons
// @Produce json
// @Param id path string true "人物ID"
// @Success 200 {object} PersonResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /persons/{id} [get]
func (h *PersonHandler) GetByID(c echo.Context) error {
	p, err := h.personService.GetPerson(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toPersonResponse(p))
}

// List godoc
// @Summary 人物一覧を取得
// @Tags persons
// @Produce json
// @Success 200 {array} PersonResponse
// @Router /persons [get]
func (h *PersonHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, toPersonResponses(h.personService.ListPersons(c.Request().Context())))
}

// ListEvents godoc
// @Summary 人物が参加登録しているイベント一覧
// @Tags persons
// @Produce json
// @Param id path string true "人物ID"
// @Success 200 {array} EventResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /persons/{id}/events [get]
func (h *PersonHandler) ListEvents(c echo.Context) error {
	events, err := h.personService.GetEventsForPerson(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toEventResponses(events))
}

// CountEvents godoc
// @Summary 人物が参加登録しているイベント数
// @Tags persons
// @Produce json
// @Param id path string true "人物ID"
// @Success 200 {object} CountResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /persons/{id}/events/count [get]
func (h *PersonHandler) CountEvents(c echo.Context) error {
	count, err := h.personService.CountEventsForPerson(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, CountResponse{Count: count})
}
