package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAuthService struct {
	loginResult   *ports.LoginResult
	loginErr      error
	refreshResult *ports.LoginResult
	refreshErr    error

	lastEmail    string
	lastPassword string
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.LoginResult, error) {
	s.lastEmail = email
	s.lastPassword = password
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) Refresh(_ context.Context, _ string) (*ports.LoginResult, error) {
	return s.refreshResult, s.refreshErr
}

type stubRegistrationService struct {
	submitResult *domain.PendingUser
	submitErr    error
	approveUser  *domain.User
	approveErr   error
	rejectErr    error
	pendingList  []domain.PendingUser
	listErr      error

	lastInput     ports.RegistrationInput
	lastActor     ports.Claims
	lastPendingID string
}

func (s *stubRegistrationService) Submit(_ context.Context, in ports.RegistrationInput) (*domain.PendingUser, error) {
	s.lastInput = in
	return s.submitResult, s.submitErr
}

func (s *stubRegistrationService) Approve(_ context.Context, actor ports.Claims, id string) (*domain.User, error) {
	s.lastActor = actor
	s.lastPendingID = id
	return s.approveUser, s.approveErr
}

func (s *stubRegistrationService) Reject(_ context.Context, actor ports.Claims, id string) error {
	s.lastActor = actor
	s.lastPendingID = id
	return s.rejectErr
}

func (s *stubRegistrationService) ListPending(_ context.Context, actor ports.Claims) ([]domain.PendingUser, error) {
	s.lastActor = actor
	return s.pendingList, s.listErr
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthHandler_Login_Success(t *testing.T) {
	auth := &stubAuthService{
		loginResult: &ports.LoginResult{
			User:   &domain.User{ID: "user_1", Email: "amina@example.com", Role: domain.RoleMedecin},
			Tokens: ports.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
		},
	}
	h := NewAuthHandler(auth, &stubRegistrationService{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"amina@example.com","password":"s3cret"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Error("success must be true")
	}
	if body["accessToken"] != "acc" || body["refreshToken"] != "ref" {
		t.Errorf("token fields wrong: %v", body)
	}
	if auth.lastEmail != "amina@example.com" {
		t.Errorf("service received wrong email %q", auth.lastEmail)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagated(t *testing.T) {
	auth := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(auth, &stubRegistrationService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"amina@example.com","password":"wrong"}`)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("domain error must pass through to the error handler, got %v", err)
	}
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubRegistrationService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/v1/auth/login", `{"email":`)

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubRegistrationService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/v1/auth/login", `{"email":"not-an-email"}`)

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthHandler_Register_Success(t *testing.T) {
	reg := &stubRegistrationService{
		submitResult: &domain.PendingUser{
			ID:     "pending_1",
			Email:  "fatou@example.com",
			Role:   domain.RoleSoignant,
			Status: domain.RegistrationPending,
		},
	}
	h := NewAuthHandler(&stubAuthService{}, reg)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/register", `{
		"username": "fatou",
		"email": "fatou@example.com",
		"password": "s3cret-passw0rd",
		"role": "soignant",
		"motivation": "Je veux aider les enfants."
	}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("register handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if reg.lastInput.Role != domain.RoleSoignant {
		t.Errorf("service received wrong role %q", reg.lastInput.Role)
	}

	body := decodeBody(t, rec)
	data, _ := body["data"].(map[string]any)
	if data == nil || data["pendingUser"] == nil {
		t.Errorf("response must carry the pending user, got %v", body)
	}
}

func TestAuthHandler_Register_UnknownRoleRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubRegistrationService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/v1/auth/register", `{
		"username": "fatou",
		"email": "fatou@example.com",
		"password": "s3cret-passw0rd",
		"role": "super_admin",
		"motivation": "..."
	}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_ShortPasswordRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubRegistrationService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/v1/auth/register", `{
		"username": "fatou",
		"email": "fatou@example.com",
		"password": "short",
		"motivation": "..."
	}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_ConflictPropagated(t *testing.T) {
	reg := &stubRegistrationService{submitErr: domain.ErrPendingExists}
	h := NewAuthHandler(&stubAuthService{}, reg)

	c, _ := newJSONContext(t, http.MethodPost, "/api/v1/auth/register", `{
		"username": "fatou",
		"email": "fatou@example.com",
		"password": "s3cret-passw0rd",
		"motivation": "..."
	}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrPendingExists) {
		t.Fatalf("conflict must pass through to the error handler, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Refresh
// ---------------------------------------------------------------------------

func TestAuthHandler_Refresh_Success(t *testing.T) {
	auth := &stubAuthService{
		refreshResult: &ports.LoginResult{
			User:   &domain.User{ID: "user_1"},
			Tokens: ports.TokenPair{AccessToken: "acc2", RefreshToken: "ref2"},
		},
	}
	h := NewAuthHandler(auth, &stubRegistrationService{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/auth/refresh", `{"refreshToken":"ref"}`)

	if err := h.Refresh(c); err != nil {
		t.Fatalf("refresh handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["accessToken"] != "acc2" {
		t.Errorf("expected fresh access token, got %v", body)
	}
}

func TestAuthHandler_Refresh_InvalidTokenPropagated(t *testing.T) {
	auth := &stubAuthService{refreshErr: domain.ErrInvalidToken}
	h := NewAuthHandler(auth, &stubRegistrationService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/v1/auth/refresh", `{"refreshToken":"expired"}`)

	if err := h.Refresh(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken to pass through, got %v", err)
	}
}
