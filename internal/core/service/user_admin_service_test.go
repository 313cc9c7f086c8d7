package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

func TestUserAdminService_Create_ActiveAndApproved(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserAdminService(repo, testBcryptCost, discardLogger)

	user, err := svc.Create(context.Background(), adminClaims, registrationInput("fatou@example.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !user.IsActive || !user.IsApproved {
		t.Error("an admin-created account must be active and approved")
	}
	if len(repo.pending) != 0 {
		t.Error("direct creation must not go through the pending set")
	}

	cred, err := repo.FindCredential(context.Background(), "fatou@example.com")
	if err != nil {
		t.Fatalf("credential must be stored: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("s3cret-passw0rd")); err != nil {
		t.Errorf("stored hash must match the submitted password: %v", err)
	}
}

func TestUserAdminService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserAdminService(repo, testBcryptCost, discardLogger)
	ctx := context.Background()

	if _, err := svc.Create(ctx, adminClaims, registrationInput("fatou@example.com")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, adminClaims, registrationInput("fatou@example.com")); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestUserAdminService_Create_PendingEmailConflicts(t *testing.T) {
	repo := newStubUserRepo()
	reg := NewRegistrationService(repo, nil, testBcryptCost, discardLogger)
	svc := NewUserAdminService(repo, testBcryptCost, discardLogger)
	ctx := context.Background()

	if _, err := reg.Submit(ctx, registrationInput("fatou@example.com")); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Create(ctx, adminClaims, registrationInput("fatou@example.com")); !errors.Is(err, domain.ErrPendingExists) {
		t.Errorf("expected ErrPendingExists, got %v", err)
	}
}

func TestUserAdminService_Create_UnknownRole(t *testing.T) {
	svc := NewUserAdminService(newStubUserRepo(), testBcryptCost, discardLogger)

	in := registrationInput("fatou@example.com")
	in.Role = "super_admin"
	if _, err := svc.Create(context.Background(), adminClaims, in); !errors.Is(err, domain.ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserAdminService_List(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserAdminService(repo, testBcryptCost, discardLogger)
	ctx := context.Background()

	if _, err := svc.Create(ctx, adminClaims, registrationInput("fatou@example.com")); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := svc.List(ctx, adminClaims)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 account, got %d", len(list))
	}
}

func TestUserAdminService_AdminOnly(t *testing.T) {
	svc := NewUserAdminService(newStubUserRepo(), testBcryptCost, discardLogger)

	for _, role := range []domain.Role{domain.RoleMedecin, domain.RoleAssistantSocial, domain.RoleVisiteur} {
		actor := ports.Claims{UserID: "u1", Role: role}
		if _, err := svc.List(context.Background(), actor); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("role %s list: expected ErrForbidden, got %v", role, err)
		}
		if _, err := svc.Create(context.Background(), actor, registrationInput("x@example.com")); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("role %s create: expected ErrForbidden, got %v", role, err)
		}
	}
}
