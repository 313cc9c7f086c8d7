package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/api/metrics"
	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// AuthHandler exposes login, registration, and refresh endpoints.
type AuthHandler struct {
	auth         ports.AuthService
	registration ports.RegistrationService
}

func NewAuthHandler(auth ports.AuthService, registration ports.RegistrationService) *AuthHandler {
	return &AuthHandler{auth: auth, registration: registration}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success      bool         `json:"success"`
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type registerRequest struct {
	Username       string `json:"username"        validate:"required"`
	Email          string `json:"email"           validate:"required,email"`
	FirstName      string `json:"first_name"      validate:"omitempty"`
	LastName       string `json:"last_name"       validate:"omitempty"`
	Password       string `json:"password"        validate:"required,min=8"`
	Role           string `json:"role"            validate:"omitempty,oneof=admin medecin soignant assistant_social logisticien donateur parrain visiteur"`
	PhoneNumber    string `json:"phone_number"    validate:"omitempty"`
	Motivation     string `json:"motivation"      validate:"required"`
	Experience     string `json:"experience"      validate:"omitempty"`
	Specialization string `json:"specialization"  validate:"omitempty"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Login authenticates an email/password pair and returns a token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Success:      true,
		User:         result.User,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	})
}

// Register submits a registration request for admin approval.
//
// @Summary      Submit a registration request
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pending, err := h.registration.Submit(c.Request().Context(), ports.RegistrationInput{
		Username:       req.Username,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Password:       req.Password,
		Role:           domain.Role(req.Role),
		PhoneNumber:    req.PhoneNumber,
		Motivation:     req.Motivation,
		Experience:     req.Experience,
		Specialization: req.Specialization,
	})
	if err != nil {
		return err
	}
	metrics.RegistrationsSubmittedTotal.WithLabelValues(string(pending.Role)).Inc()

	return c.JSON(http.StatusCreated, successResponse{
		Success: true,
		Message: "registration submitted, awaiting approval",
		Data:    map[string]any{"pendingUser": pending},
	})
}

// Refresh exchanges a refresh token for a fresh token pair.
//
// @Summary      Refresh tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Success:      true,
		User:         result.User,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountPending):
		return "pending"
	case errors.Is(err, domain.ErrAccountDisabled):
		return "disabled"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "rate_limited"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}
