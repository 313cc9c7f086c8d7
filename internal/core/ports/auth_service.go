package ports

import (
	"context"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// LoginResult carries the sanitized user and the issued token pair.
type LoginResult struct {
	User   *domain.User
	Tokens TokenPair
}

// AuthService authenticates credentials and refreshes sessions.
type AuthService interface {
	// Login returns domain.ErrInvalidCredentials for both unknown emails and
	// wrong passwords (enumeration resistance), domain.ErrAccountPending /
	// domain.ErrAccountDisabled for accounts that authenticated but may not
	// log in, and domain.ErrTooManyAttempts when rate limited.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Refresh exchanges a valid refresh token for a fresh pair. The account
	// must still be approved and active.
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
}
