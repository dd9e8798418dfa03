package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type RegistrationHandler struct {
	registrationService RegistrationServiceInterface
}

func NewRegistrationHandler(registrationService RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

type RegisterRequest struct {
	PersonID string `json:"person_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type RegistrationResponse struct {
	EventID  string `json:"event_id"`
	PersonID string `json:"person_id"`
}

// Register godoc
// @Summary イベントに参加登録
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "イベントID"
// @Param request body RegisterRequest true "参加者"
// @Success 201 {object} RegistrationResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Router /events/{id}/registrations [post]
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errorJSON(c, err)
	}

	eventID := c.Param("id")
	if err := h.registrationService.RegisterPersonForEvent(c.Request().Context(), req.PersonID, eventID); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, RegistrationResponse{EventID: eventID, PersonID: req.PersonID})
}

// Unregister godoc
// @Summary 参加登録を取り消す
// @Tags registrations
// @Param id path string true "イベントID"
// @Param person_id path string true "人物ID"
// @Success 204
// @Failure 404 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Router /events/{id}/registrations/{person_id} [delete]
func (h *RegistrationHandler) Unregister(c echo.Context) error {
	err := h.registrationService.UnregisterPersonForEvent(c.Request().Context(), c.Param("person_id"), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
