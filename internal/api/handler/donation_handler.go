package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/api/metrics"
	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// DonationHandler exposes the donations endpoints.
type DonationHandler struct {
	donations ports.DonationService
}

func NewDonationHandler(donations ports.DonationService) *DonationHandler {
	return &DonationHandler{donations: donations}
}

type donationRequest struct {
	DonorName  string  `json:"donor_name"  validate:"required"`
	DonorEmail string  `json:"donor_email" validate:"required,email"`
	Amount     float64 `json:"amount"      validate:"required,gt=0"`
	Type       string  `json:"type"        validate:"required,oneof=ponctuel mensuel"`
	Date       string  `json:"date"        validate:"omitempty"`
	Message    string  `json:"message"     validate:"omitempty"`
}

// List returns all donations.
//
// @Summary      List donations
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Router       /donations [get]
func (h *DonationHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	donations, err := h.donations.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: donations})
}

// Create records a new donation and queues the receipt notification.
//
// @Summary      Record a donation
// @Tags         donations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      donationRequest  true  "Donation"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /donations [post]
func (h *DonationHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req donationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	donation, err := h.donations.Create(c.Request().Context(), claims, ports.DonationInput{
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		Amount:     req.Amount,
		Type:       domain.DonationType(req.Type),
		Date:       req.Date,
		Message:    req.Message,
	})
	if err != nil {
		return err
	}
	metrics.DonationsCreatedTotal.WithLabelValues(string(donation.Type)).Inc()

	return c.JSON(http.StatusCreated, successResponse{Success: true, Data: donation})
}
