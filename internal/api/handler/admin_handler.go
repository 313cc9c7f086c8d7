package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/api/metrics"
	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// AdminHandler exposes the pending-registration review endpoints.
type AdminHandler struct {
	registration ports.RegistrationService
}

func NewAdminHandler(registration ports.RegistrationService) *AdminHandler {
	return &AdminHandler{registration: registration}
}

type decisionRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

// ListPending returns all open registration requests.
//
// @Summary      List pending registrations
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/pending-users [get]
func (h *AdminHandler) ListPending(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	pending, err := h.registration.ListPending(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: pending})
}

// Decide approves or rejects a pending registration.
//
// @Summary      Approve or reject a pending registration
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Pending registration id"
// @Param        body  body      decisionRequest  true  "Decision"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/pending-users/{id} [post]
func (h *AdminHandler) Decide(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidAction
	}

	pendingID := c.Param("id")
	ctx := c.Request().Context()

	switch req.Action {
	case "approve":
		user, err := h.registration.Approve(ctx, claims, pendingID)
		if err != nil {
			return err
		}
		metrics.RegistrationDecisionsTotal.WithLabelValues("approve").Inc()
		return c.JSON(http.StatusOK, successResponse{
			Success: true,
			Message: "registration approved",
			Data:    user,
		})
	case "reject":
		if err := h.registration.Reject(ctx, claims, pendingID); err != nil {
			return err
		}
		metrics.RegistrationDecisionsTotal.WithLabelValues("reject").Inc()
		return c.JSON(http.StatusOK, successResponse{
			Success: true,
			Message: "registration rejected",
		})
	default:
		return domain.ErrInvalidAction
	}
}
