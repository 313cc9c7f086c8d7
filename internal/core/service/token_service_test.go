package service

import (
	"errors"
	"testing"
	"time"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:         "user_1",
		Username:   "amina",
		Email:      "amina@example.com",
		Role:       domain.RoleMedecin,
		IsActive:   true,
		IsApproved: true,
	}
}

func TestTokenService_IssueAndVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour, discardLogger)

	pair, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("both tokens must be non-empty")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatal("access and refresh tokens must differ")
	}

	claims, err := svc.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	if claims.UserID != "user_1" {
		t.Errorf("expected userId %q, got %q", "user_1", claims.UserID)
	}
	if claims.Email != "amina@example.com" {
		t.Errorf("expected email %q, got %q", "amina@example.com", claims.Email)
	}
	if claims.Role != domain.RoleMedecin {
		t.Errorf("expected role %q, got %q", domain.RoleMedecin, claims.Role)
	}

	if _, err := svc.VerifyRefresh(pair.RefreshToken); err != nil {
		t.Fatalf("verify refresh: %v", err)
	}
}

func TestTokenService_AccessTokenRejectedAsRefresh(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour, discardLogger)

	pair, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.VerifyRefresh(pair.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("access token verified with refresh secret: err=%v", err)
	}
	if _, err := svc.VerifyAccess(pair.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("refresh token verified with access secret: err=%v", err)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", -time.Minute, 24*time.Hour, discardLogger)
	// A negative TTL falls back to the default, so sign one manually.
	svc.accessTTL = -time.Minute

	token, err := svc.sign(testUser(), svc.accessSecret, svc.accessTTL)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.VerifyAccess(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour, discardLogger)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.VerifyAccess(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestTokenService_ForeignSecretRejected(t *testing.T) {
	ours := NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour, discardLogger)
	theirs := NewTokenService("other-access", "other-refresh", time.Hour, 24*time.Hour, discardLogger)

	pair, err := theirs.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := ours.VerifyAccess(pair.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("token signed with a foreign secret must not verify, got %v", err)
	}
}
