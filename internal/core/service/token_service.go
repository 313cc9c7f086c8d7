package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

const (
	defaultAccessTTL  = time.Hour
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// tokenClaims is the wire shape of the JWT payload.
type tokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies access and refresh tokens with distinct
// secrets, so a compromised refresh secret cannot forge access tokens.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	log           zerolog.Logger
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration, log zerolog.Logger) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		log:           log,
	}
}

// Issue signs an access/refresh pair for the given user.
func (s *TokenService) Issue(user *domain.User) (ports.TokenPair, error) {
	access, err := s.sign(user, s.accessSecret, s.accessTTL)
	if err != nil {
		return ports.TokenPair{}, err
	}
	refresh, err := s.sign(user, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return ports.TokenPair{}, err
	}
	return ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess decodes an access token.
func (s *TokenService) VerifyAccess(token string) (*ports.Claims, error) {
	return s.verify(token, s.accessSecret)
}

// VerifyRefresh decodes a refresh token.
func (s *TokenService) VerifyRefresh(token string) (*ports.Claims, error) {
	return s.verify(token, s.refreshSecret)
}

func (s *TokenService) sign(user *domain.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := &tokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// verify maps every failure mode (malformed, bad signature, expired, wrong
// secret) to domain.ErrInvalidToken. The concrete cause is logged at debug
// level; callers must not be able to distinguish them.
func (s *TokenService) verify(token string, secret []byte) (*ports.Claims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		s.log.Debug().Err(err).Msg("token verification failed")
		return nil, domain.ErrInvalidToken
	}
	return &ports.Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   domain.Role(claims.Role),
	}, nil
}
