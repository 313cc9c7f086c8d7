package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users       map[string]*domain.User        // keyed by id
	pending     map[string]*domain.PendingUser // keyed by id
	credentials map[string]*domain.Credential  // keyed by email
	nextID      int

	saveCredentialErr error // if set, SaveCredential returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:       make(map[string]*domain.User),
		pending:     make(map[string]*domain.PendingUser),
		credentials: make(map[string]*domain.Credential),
	}
}

func (r *stubUserRepo) CreateUser(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *u
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ListUsers(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) CreatePending(_ context.Context, p *domain.PendingUser) (*domain.PendingUser, error) {
	for _, existing := range r.users {
		if existing.Email == p.Email {
			return nil, domain.ErrUserExists
		}
	}
	for _, existing := range r.pending {
		if existing.Email == p.Email {
			return nil, domain.ErrPendingExists
		}
	}
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("pending_%d", r.nextID)
	r.pending[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindPendingByEmail(_ context.Context, email string) (*domain.PendingUser, error) {
	for _, p := range r.pending {
		if p.Email == email {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPendingNotFound
}

func (r *stubUserRepo) FindPendingByID(_ context.Context, id string) (*domain.PendingUser, error) {
	p, ok := r.pending[id]
	if !ok {
		return nil, domain.ErrPendingNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubUserRepo) DeletePending(_ context.Context, id string) error {
	if _, ok := r.pending[id]; !ok {
		return domain.ErrPendingNotFound
	}
	delete(r.pending, id)
	return nil
}

func (r *stubUserRepo) ListPending(_ context.Context) ([]domain.PendingUser, error) {
	out := make([]domain.PendingUser, 0, len(r.pending))
	for _, p := range r.pending {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubUserRepo) SaveCredential(_ context.Context, email, passwordHash string) error {
	if r.saveCredentialErr != nil {
		return r.saveCredentialErr
	}
	r.credentials[email] = &domain.Credential{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	return nil
}

func (r *stubUserRepo) FindCredential(_ context.Context, email string) (*domain.Credential, error) {
	c, ok := r.credentials[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubUserRepo) DeleteCredential(_ context.Context, email string) error {
	delete(r.credentials, email)
	return nil
}

// stubDispatcher records every enqueued notification.
type stubDispatcher struct {
	sent []ports.Notification
}

func (d *stubDispatcher) Enqueue(n ports.Notification) {
	d.sent = append(d.sent, n)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// testBcryptCost keeps hashing fast in tests.
const testBcryptCost = bcrypt.MinCost

var adminClaims = ports.Claims{UserID: "admin_1", Email: "admin@example.com", Role: domain.RoleAdmin}

func registrationInput(email string) ports.RegistrationInput {
	return ports.RegistrationInput{
		Username:   "fatou",
		Email:      email,
		FirstName:  "Fatou",
		LastName:   "Diallo",
		Password:   "s3cret-passw0rd",
		Role:       domain.RoleSoignant,
		Motivation: "Je veux aider les enfants.",
	}
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestRegistrationService_Submit_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewRegistrationService(repo, nil, testBcryptCost, discardLogger)

	pending, err := svc.Submit(context.Background(), registrationInput("fatou@example.com"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if pending.ID == "" {
		t.Error("pending id must be assigned")
	}
	if pending.Status != domain.RegistrationPending {
		t.Errorf("expected status %q, got %q", domain.RegistrationPending, pending.Status)
	}
	if pending.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}

	cred, err := repo.FindCredential(context.Background(), "fatou@example.com")
	if err != nil {
		t.Fatalf("credential must be stored: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("s3cret-passw0rd")); err != nil {
		t.Errorf("stored hash must match the submitted password: %v", err)
	}
	if cred.PasswordHash == "s3cret-passw0rd" {
		t.Error("password must not be stored in plaintext")
	}
}

func TestRegistrationService_Submit_DefaultsRoleToVisiteur(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewRegistrationService(repo, nil, testBcryptCost, discardLogger)

	in := registrationInput("fatou@example.com")
	in.Role = ""
	pending, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if pending.Role != domain.RoleVisiteur {
		t.Errorf("expected default role %q, got %q", domain.RoleVisiteur, pending.Role)
	}
}

func TestRegistrationService_Submit_UnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewRegistrationService(repo, nil, testBcryptCost, discardLogger)

	in := registrationInput("fatou@example.com")
	in.Role = "super_admin"
	if _, err := svc.Submit(context.Background(), in); !errors.Is(err, domain.ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRegistrationService_Submit_DuplicatePending(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewRegistrationService(repo, nil, testBcryptCost, discardLogger)

	if _, err := svc.Submit(context.Background(), registrationInput("fatou@example.com")); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.Submit(context.Background(), registrationInput("fatou@example.com")); !errors.Is(err, domain.ErrPendingExists) {
		t.Errorf("expected ErrPendingExists, got %v", err)
	}
	if len(repo.pending) != 1 {
		t.Errorf("expected exactly 1 pending record, got %d", len(repo.pending))
	}
}

func TestRegistrationService_Submit_EmailAlreadyApproved(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewRegistrationService(repo, nil, testBcryptCost, discardLogger)

	_, _ = repo.CreateUser(context.Background(), &domain.User{Email: "fatou@example.com", IsActive: true, IsApproved: true})

	if _, err := svc.Submit(context.Background(), registrationInput("fatou@example.com")); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestRegistrationService_Submit_CredentialFailureRollsBackPending(t *testing.T) {
	repo := newStubUserRepo()
	repo.saveCredentialErr = errors.New("db unavailable")
	svc := NewRegistrationService(repo, nil, testBcryptCost, discardLogger)

	if _, err := svc.Submit(context.Background(), registrationInput("fatou@example.com")); err == nil {
		t.Fatal("expected error when credential store fails")
	}
	if len(repo.pending) != 0 {
		t.Errorf("pending record must be rolled back, %d left", len(repo.pending))
	}
}

// ---------------------------------------------------------------------------
// Approve / Reject tests
// ---------------------------------------------------------------------------

func TestRegistrationService_Approve_Success(t *testing.T) {
	repo := newStubUserRepo()
	dispatcher := &stubDispatcher{}
	svc := NewRegistrationService(repo, dispatcher, testBcryptCost, discardLogger)

	pending, err := svc.Submit(context.Background(), registrationInput("fatou@example.com"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	user, err := svc.Approve(context.Background(), adminClaims, pending.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}

	if !user.IsActive || !user.IsApproved {
		t.Error("approved user must be active and approved")
	}
	if user.Role != pending.Role {
		t.Errorf("role must carry over: expected %q, got %q", pending.Role, user.Role)
	}
	if len(repo.pending) != 0 {
		t.Errorf("pending record must be removed after approval, %d left", len(repo.pending))
	}
	if _, err := repo.FindUserByEmail(context.Background(), "fatou@example.com"); err != nil {
		t.Errorf("user must exist after approval: %v", err)
	}
	if len(dispatcher.sent) != 1 || dispatcher.sent[0].Kind != ports.NotifyRegistrationApproved {
		t.Errorf("expected one approval notification, got %+v", dispatcher.sent)
	}
}

func TestRegistrationService_Approve_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewRegistrationService(repo, nil, testBcryptCost, discardLogger)

	if _, err := svc.Approve(context.Background(), adminClaims, "missing"); !errors.Is(err, domain.ErrPendingNotFound) {
		t.Errorf("expected ErrPendingNotFound, got %v", err)
	}
}

func TestRegistrationService_Approve_NonAdminForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewRegistrationService(repo, nil, testBcryptCost, discardLogger)

	pending, _ := svc.Submit(context.Background(), registrationInput("fatou@example.com"))

	for _, role := range []domain.Role{domain.RoleMedecin, domain.RoleSoignant, domain.RoleVisiteur} {
		actor := ports.Claims{UserID: "u1", Role: role}
		if _, err := svc.Approve(context.Background(), actor, pending.ID); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("role %s: expected ErrForbidden, got %v", role, err)
		}
	}
	if len(repo.pending) != 1 {
		t.Error("pending record must survive forbidden approval attempts")
	}
}

func TestRegistrationService_Reject_RemovesPendingAndCredential(t *testing.T) {
	repo := newStubUserRepo()
	dispatcher := &stubDispatcher{}
	svc := NewRegistrationService(repo, dispatcher, testBcryptCost, discardLogger)

	pending, _ := svc.Submit(context.Background(), registrationInput("fatou@example.com"))

	if err := svc.Reject(context.Background(), adminClaims, pending.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if len(repo.pending) != 0 {
		t.Error("pending record must be removed after rejection")
	}
	if _, err := repo.FindCredential(context.Background(), "fatou@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Error("credential must be removed after rejection")
	}
	if len(dispatcher.sent) != 1 || dispatcher.sent[0].Kind != ports.NotifyRegistrationRejected {
		t.Errorf("expected one rejection notification, got %+v", dispatcher.sent)
	}

	// A second reject for the same id must fail and mutate nothing.
	if err := svc.Reject(context.Background(), adminClaims, pending.ID); !errors.Is(err, domain.ErrPendingNotFound) {
		t.Errorf("expected ErrPendingNotFound on repeat reject, got %v", err)
	}
}

func TestRegistrationService_RejectedEmailCanResubmit(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewRegistrationService(repo, nil, testBcryptCost, discardLogger)

	pending, _ := svc.Submit(context.Background(), registrationInput("fatou@example.com"))
	if err := svc.Reject(context.Background(), adminClaims, pending.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}

	if _, err := svc.Submit(context.Background(), registrationInput("fatou@example.com")); err != nil {
		t.Errorf("rejected email must be free to register again: %v", err)
	}
}

func TestRegistrationService_ListPending_AdminOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewRegistrationService(repo, nil, testBcryptCost, discardLogger)

	_, _ = svc.Submit(context.Background(), registrationInput("fatou@example.com"))

	list, err := svc.ListPending(context.Background(), adminClaims)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 pending registration, got %d", len(list))
	}

	visitor := ports.Claims{UserID: "u2", Role: domain.RoleVisiteur}
	if _, err := svc.ListPending(context.Background(), visitor); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for visitor, got %v", err)
	}
}
