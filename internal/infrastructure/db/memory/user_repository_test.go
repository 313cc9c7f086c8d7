package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(NewStore())
	ctx := context.Background()

	first, err := repo.CreateUser(ctx, &domain.User{Email: "amina@example.com", Username: "amina"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == "" {
		t.Fatal("id must be assigned")
	}

	if _, err := repo.CreateUser(ctx, &domain.User{Email: "amina@example.com", Username: "other"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_CreateUser_ConcurrentSameEmail(t *testing.T) {
	repo := NewUserRepository(NewStore())
	ctx := context.Background()

	const attempts = 20
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateUser(ctx, &domain.User{Email: "amina@example.com"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
		} else if !errors.Is(err, domain.ErrUserExists) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if created != 1 {
		t.Errorf("exactly one create must win, got %d", created)
	}
}

func TestUserRepository_PendingLifecycle(t *testing.T) {
	repo := NewUserRepository(NewStore())
	ctx := context.Background()

	pending, err := repo.CreatePending(ctx, &domain.PendingUser{
		Email:     "fatou@example.com",
		Username:  "fatou",
		Status:    domain.RegistrationPending,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create pending: %v", err)
	}

	if _, err := repo.CreatePending(ctx, &domain.PendingUser{Email: "fatou@example.com"}); !errors.Is(err, domain.ErrPendingExists) {
		t.Fatalf("expected ErrPendingExists, got %v", err)
	}

	byEmail, err := repo.FindPendingByEmail(ctx, "fatou@example.com")
	if err != nil || byEmail.ID != pending.ID {
		t.Fatalf("find by email: %v (%+v)", err, byEmail)
	}

	if err := repo.DeletePending(ctx, pending.ID); err != nil {
		t.Fatalf("delete pending: %v", err)
	}
	if err := repo.DeletePending(ctx, pending.ID); !errors.Is(err, domain.ErrPendingNotFound) {
		t.Fatalf("repeat delete must fail with ErrPendingNotFound, got %v", err)
	}
	if _, err := repo.FindPendingByEmail(ctx, "fatou@example.com"); !errors.Is(err, domain.ErrPendingNotFound) {
		t.Fatalf("expected ErrPendingNotFound after delete, got %v", err)
	}
}

func TestUserRepository_CreatePending_EmailAlreadyRegistered(t *testing.T) {
	repo := NewUserRepository(NewStore())
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, &domain.User{Email: "amina@example.com", IsActive: true, IsApproved: true}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// The store checks the user set inside the same lock, so an approved
	// account and a pending request for one email can never coexist.
	if _, err := repo.CreatePending(ctx, &domain.PendingUser{Email: "amina@example.com"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := repo.FindPendingByEmail(ctx, "amina@example.com"); !errors.Is(err, domain.ErrPendingNotFound) {
		t.Fatalf("no pending record must be stored, got %v", err)
	}
}

func TestUserRepository_ListPending_SortedByCreation(t *testing.T) {
	repo := NewUserRepository(NewStore())
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, email := range []string{"c@example.com", "a@example.com", "b@example.com"} {
		_, err := repo.CreatePending(ctx, &domain.PendingUser{
			Email:     email,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("create %s: %v", email, err)
		}
	}

	list, err := repo.ListPending(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 pending records, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.Before(list[i-1].CreatedAt) {
			t.Errorf("list must be ordered by creation time: %v after %v", list[i].CreatedAt, list[i-1].CreatedAt)
		}
	}
}

func TestUserRepository_Credentials(t *testing.T) {
	repo := NewUserRepository(NewStore())
	ctx := context.Background()

	if _, err := repo.FindCredential(ctx, "amina@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := repo.SaveCredential(ctx, "amina@example.com", "hash-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Saving again overwrites, mirroring the upsert the Mongo implementation does.
	if err := repo.SaveCredential(ctx, "amina@example.com", "hash-2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	cred, err := repo.FindCredential(ctx, "amina@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if cred.PasswordHash != "hash-2" {
		t.Errorf("expected latest hash, got %q", cred.PasswordHash)
	}

	if err := repo.DeleteCredential(ctx, "amina@example.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindCredential(ctx, "amina@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}

func TestUserRepository_CopiesAreIsolated(t *testing.T) {
	repo := NewUserRepository(NewStore())
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, &domain.User{Email: "amina@example.com", Username: "amina"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Username = "mutated"

	reread, err := repo.FindUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if reread.Username != "amina" {
		t.Errorf("mutating a returned copy must not affect the store, got %q", reread.Username)
	}
}
