package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// StockHandler exposes the stock inventory endpoints.
type StockHandler struct {
	stock ports.StockService
}

func NewStockHandler(stock ports.StockService) *StockHandler {
	return &StockHandler{stock: stock}
}

type stockRequest struct {
	Name           string  `json:"name"            validate:"required"`
	Category       string  `json:"category"        validate:"required"`
	Quantity       int     `json:"quantity"        validate:"gte=0"`
	Unit           string  `json:"unit"            validate:"required"`
	AlertThreshold int     `json:"alert_threshold" validate:"gte=0"`
	ExpiryDate     string  `json:"expiry_date"     validate:"omitempty"`
	Supplier       string  `json:"supplier"        validate:"omitempty"`
	UnitPrice      float64 `json:"unit_price"      validate:"gte=0"`
}

func (r *stockRequest) toInput() ports.StockInput {
	return ports.StockInput{
		Name:           r.Name,
		Category:       r.Category,
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		AlertThreshold: r.AlertThreshold,
		ExpiryDate:     r.ExpiryDate,
		Supplier:       r.Supplier,
		UnitPrice:      r.UnitPrice,
	}
}

// List returns every stock item.
//
// @Summary      List stock items
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Router       /stock [get]
func (h *StockHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	items, err := h.stock.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: items})
}

// ListLow returns items at or below their alert threshold.
//
// @Summary      List low-stock items
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Router       /stock/low [get]
func (h *StockHandler) ListLow(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	items, err := h.stock.ListLow(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: items})
}

// Create adds a new stock item.
//
// @Summary      Create a stock item
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      stockRequest  true  "Stock item"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /stock [post]
func (h *StockHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req stockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.stock.Create(c.Request().Context(), claims, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, successResponse{Success: true, Data: item})
}

// Update replaces the fields of a stock item.
//
// @Summary      Update a stock item
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Stock item id"
// @Param        body  body      stockRequest  true  "Stock item"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /stock/{id} [put]
func (h *StockHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req stockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.stock.Update(c.Request().Context(), claims, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: item})
}

// Delete removes a stock item.
//
// @Summary      Delete a stock item
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Stock item id"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /stock/{id} [delete]
func (h *StockHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.stock.Delete(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "stock item deleted"})
}
