package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// UserHandler exposes the admin account directory.
type UserHandler struct {
	users ports.UserAdminService
}

func NewUserHandler(users ports.UserAdminService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Username       string `json:"username"        validate:"required"`
	Email          string `json:"email"           validate:"required,email"`
	FirstName      string `json:"first_name"      validate:"omitempty"`
	LastName       string `json:"last_name"       validate:"omitempty"`
	Password       string `json:"password"        validate:"required,min=8"`
	Role           string `json:"role"            validate:"omitempty,oneof=admin medecin soignant assistant_social logisticien donateur parrain visiteur"`
	PhoneNumber    string `json:"phone_number"    validate:"omitempty"`
	Specialization string `json:"specialization"  validate:"omitempty"`
}

// List returns every account. Credentials are stored apart from the user
// records, so the listing never carries password hashes.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	users, err := h.users.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Data: users})
}

// Create provisions an approved, active account directly, bypassing the
// registration workflow.
//
// @Summary      Create an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Create(c.Request().Context(), claims, ports.RegistrationInput{
		Username:       req.Username,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Password:       req.Password,
		Role:           domain.Role(req.Role),
		PhoneNumber:    req.PhoneNumber,
		Specialization: req.Specialization,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, successResponse{Success: true, Data: user})
}
