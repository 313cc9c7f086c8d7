package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// ChildHandler exposes the children's records endpoints.
type ChildHandler struct {
	children ports.ChildService
}

func NewChildHandler(children ports.ChildService) *ChildHandler {
	return &ChildHandler{children: children}
}

type childRequest struct {
	FirstName       string `json:"first_name"       validate:"required"`
	LastName        string `json:"last_name"        validate:"required"`
	BirthDate       string `json:"birth_date"       validate:"omitempty"`
	Age             int    `json:"age"              validate:"gte=0,lte=21"`
	Sex             string `json:"sex"              validate:"required,oneof=M F"`
	Photo           string `json:"photo"            validate:"omitempty"`
	Status          string `json:"status"           validate:"omitempty,oneof=present adopte famille_accueil parraine"`
	ArrivalDate     string `json:"arrival_date"     validate:"omitempty"`
	MedicalHistory  string `json:"medical_history"  validate:"omitempty"`
	Allergies       string `json:"allergies"        validate:"omitempty"`
	Medications     string `json:"medications"      validate:"omitempty"`
	MedicalNotes    string `json:"medical_notes"    validate:"omitempty"`
	ReferringDoctor string `json:"referring_doctor" validate:"omitempty"`
}

func (r *childRequest) toInput() ports.ChildInput {
	return ports.ChildInput{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		BirthDate:       r.BirthDate,
		Age:             r.Age,
		Sex:             domain.Sex(r.Sex),
		Photo:           r.Photo,
		Status:          domain.ChildStatus(r.Status),
		ArrivalDate:     r.ArrivalDate,
		MedicalHistory:  r.MedicalHistory,
		Allergies:       r.Allergies,
		Medications:     r.Medications,
		MedicalNotes:    r.MedicalNotes,
		ReferringDoctor: r.ReferringDoctor,
	}
}

// List returns all children's records.
//
// @Summary      List children
// @Tags         children
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Router       /children [get]
func (h *ChildHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	children, err := h.children.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: children})
}

// ListPublic returns the reduced sponsorship view. No authentication.
//
// @Summary      List children available for sponsorship
// @Tags         public
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /public/children [get]
func (h *ChildHandler) ListPublic(c echo.Context) error {
	children, err := h.children.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: children})
}

// Create registers a new child's record.
//
// @Summary      Create a child record
// @Tags         children
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      childRequest  true  "Child record"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /children [post]
func (h *ChildHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req childRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	child, err := h.children.Create(c.Request().Context(), claims, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, successResponse{Success: true, Data: child})
}

// Update replaces the mutable fields of a child's record.
//
// @Summary      Update a child record
// @Tags         children
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Child id"
// @Param        body  body      childRequest  true  "Child record"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /children/{id} [put]
func (h *ChildHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req childRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	child, err := h.children.Update(c.Request().Context(), claims, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: child})
}

// Delete removes a child's record.
//
// @Summary      Delete a child record
// @Tags         children
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Child id"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /children/{id} [delete]
func (h *ChildHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.children.Delete(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "child record deleted"})
}
