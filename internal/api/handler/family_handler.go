package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// FamilyHandler exposes the adoption/foster-care application endpoints.
type FamilyHandler struct {
	families ports.FamilyService
}

func NewFamilyHandler(families ports.FamilyService) *FamilyHandler {
	return &FamilyHandler{families: families}
}

type familyRequest struct {
	Name            string  `json:"name"             validate:"required"`
	ContactName     string  `json:"contact_name"     validate:"required"`
	Email           string  `json:"email"            validate:"required,email"`
	Phone           string  `json:"phone"            validate:"omitempty"`
	Address         string  `json:"address"          validate:"omitempty"`
	Type            string  `json:"type"             validate:"required,oneof=adoption famille_accueil"`
	ChildrenWanted  int     `json:"children_wanted"  validate:"gte=0"`
	AgeMin          int     `json:"age_min"          validate:"gte=0"`
	AgeMax          int     `json:"age_max"          validate:"gte=0"`
	SexPreference   string  `json:"sex_preference"   validate:"omitempty,oneof=M F indifferent"`
	Motivation      string  `json:"motivation"       validate:"required"`
	FamilySituation string  `json:"family_situation" validate:"omitempty"`
	MonthlyIncome   float64 `json:"monthly_income"   validate:"gte=0"`
}

type familyDecisionRequest struct {
	Status string `json:"status" validate:"required,oneof=approuve rejete"`
}

// List returns all family applications.
//
// @Summary      List family applications
// @Tags         families
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /families [get]
func (h *FamilyHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	families, err := h.families.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: families})
}

// Create files a new adoption or foster-care application.
//
// @Summary      Submit a family application
// @Tags         families
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      familyRequest  true  "Application"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Router       /families [post]
func (h *FamilyHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req familyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	family, err := h.families.Create(c.Request().Context(), claims, ports.FamilyInput{
		Name:            req.Name,
		ContactName:     req.ContactName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		Type:            domain.FamilyType(req.Type),
		ChildrenWanted:  req.ChildrenWanted,
		AgeMin:          req.AgeMin,
		AgeMax:          req.AgeMax,
		SexPreference:   domain.SexPreference(req.SexPreference),
		Motivation:      req.Motivation,
		FamilySituation: req.FamilySituation,
		MonthlyIncome:   req.MonthlyIncome,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, successResponse{Success: true, Data: family})
}

// Decide approves or rejects a family application.
//
// @Summary      Decide on a family application
// @Tags         families
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Family id"
// @Param        body  body      familyDecisionRequest  true  "Decision"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /families/{id}/status [put]
func (h *FamilyHandler) Decide(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req familyDecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidAction
	}

	family, err := h.families.Decide(c.Request().Context(), claims, c.Param("id"), domain.FamilyStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: family})
}
