package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// ScheduleHandler exposes the planning calendar endpoints.
type ScheduleHandler struct {
	schedule ports.ScheduleService
}

func NewScheduleHandler(schedule ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

type scheduleRequest struct {
	Title        string    `json:"title"        validate:"required"`
	Description  string    `json:"description"  validate:"omitempty"`
	StartsAt     time.Time `json:"starts_at"    validate:"required"`
	EndsAt       time.Time `json:"ends_at"      validate:"required"`
	Type         string    `json:"type"         validate:"required,oneof=medical educatif social administratif"`
	Responsible  string    `json:"responsible"  validate:"required"`
	Participants []string  `json:"participants" validate:"omitempty"`
	Status       string    `json:"status"       validate:"omitempty,oneof=planifie en_cours termine annule"`
}

func (r *scheduleRequest) toInput() ports.ScheduleInput {
	return ports.ScheduleInput{
		Title:        r.Title,
		Description:  r.Description,
		StartsAt:     r.StartsAt,
		EndsAt:       r.EndsAt,
		Type:         domain.EventType(r.Type),
		Responsible:  r.Responsible,
		Participants: r.Participants,
		Status:       domain.EventStatus(r.Status),
	}
}

// List returns all planning events, ordered by start time.
//
// @Summary      List planning events
// @Tags         schedule
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Router       /schedule [get]
func (h *ScheduleHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	events, err := h.schedule.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: events})
}

// Create adds a new planning event.
//
// @Summary      Create a planning event
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      scheduleRequest  true  "Event"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /schedule [post]
func (h *ScheduleHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.schedule.Create(c.Request().Context(), claims, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, successResponse{Success: true, Data: event})
}

// Update replaces the fields of a planning event.
//
// @Summary      Update a planning event
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Event id"
// @Param        body  body      scheduleRequest  true  "Event"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /schedule/{id} [put]
func (h *ScheduleHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.schedule.Update(c.Request().Context(), claims, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: event})
}

// Delete removes a planning event.
//
// @Summary      Delete a planning event
// @Tags         schedule
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Event id"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /schedule/{id} [delete]
func (h *ScheduleHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.schedule.Delete(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "event deleted"})
}
