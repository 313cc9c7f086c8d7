package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// DonorHandler exposes the donor profile endpoints.
type DonorHandler struct {
	donors ports.DonorService
}

func NewDonorHandler(donors ports.DonorService) *DonorHandler {
	return &DonorHandler{donors: donors}
}

type donorRequest struct {
	UserID  string `json:"user_id" validate:"omitempty"`
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty"`
	Address string `json:"address" validate:"omitempty"`
	Notes   string `json:"notes"   validate:"omitempty"`
}

// List returns the donor profiles visible to the caller: their own for
// donors and sponsors, every profile for admins and social workers.
//
// @Summary      List donor profiles
// @Tags         donors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /donors [get]
func (h *DonorHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	donors, err := h.donors.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: donors})
}

// Create registers a donor profile.
//
// @Summary      Create a donor profile
// @Tags         donors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      donorRequest  true  "Profile"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /donors [post]
func (h *DonorHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req donorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	donor, err := h.donors.Create(c.Request().Context(), claims, ports.DonorInput{
		UserID:  req.UserID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, successResponse{Success: true, Data: donor})
}
