package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// LoginLimiter abstracts the failed-attempt store (Redis).
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements the login and refresh flows.
type AuthService struct {
	repo    ports.UserRepository
	tokens  ports.TokenService
	limiter LoginLimiter // optional
	log     zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, limiter LoginLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, limiter: limiter, log: log}
}

// Login authenticates an email/password pair and issues a token pair.
//
// Unknown email and wrong password both yield domain.ErrInvalidCredentials so
// responses cannot be used to enumerate accounts. A password match against a
// not-yet-approved registration yields the distinct domain.ErrAccountPending:
// at that point the account's existence is already implied by the match.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if blocked, err := s.tooManyFailures(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter check failed, continuing")
	} else if blocked {
		return nil, domain.ErrTooManyAttempts
	}

	cred, err := s.repo.FindCredential(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Credential exists but no approved user: registration still pending.
			return nil, domain.ErrAccountPending
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if !user.IsApproved {
		return nil, domain.ErrAccountPending
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	pair, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("login: issue tokens: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login successful")
	return &ports.LoginResult{User: user, Tokens: pair}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The account is
// re-loaded so deactivation takes effect before the old refresh token expires.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.LoginResult, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("refresh: %w", err)
	}
	if !user.IsApproved {
		return nil, domain.ErrAccountPending
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	pair, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("refresh: issue tokens: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("session refreshed")
	return &ports.LoginResult{User: user, Tokens: pair}, nil
}

func (s *AuthService) tooManyFailures(ctx context.Context, email string) (bool, error) {
	if s.limiter == nil {
		return false, nil
	}
	return s.limiter.TooManyFailures(ctx, email)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter record failed")
	}
}
