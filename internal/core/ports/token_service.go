package ports

import (
	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// Claims are the decoded identity assertions carried by a signed token.
type Claims struct {
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

// TokenPair is the access/refresh pair returned on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService issues and verifies signed, time-bound identity assertions.
// Access and refresh tokens are signed with distinct secrets so a leaked
// refresh secret cannot forge access tokens.
type TokenService interface {
	Issue(user *domain.User) (TokenPair, error)
	// VerifyAccess and VerifyRefresh return the decoded claims, or
	// domain.ErrInvalidToken for any failure (malformed, bad signature,
	// expired, wrong token kind). Callers treat all failures uniformly.
	VerifyAccess(token string) (*Claims, error)
	VerifyRefresh(token string) (*Claims, error)
}
