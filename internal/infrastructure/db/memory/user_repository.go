package memory

import (
	"context"
	"sort"
	"time"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// UserRepository implements ports.UserRepository on the in-process store.
type UserRepository struct {
	s *Store
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

func (r *UserRepository) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}

	stored := *user
	stored.ID = newID()
	r.s.users[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *UserRepository) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *UserRepository) ListUsers(_ context.Context) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *UserRepository) CreatePending(_ context.Context, pending *domain.PendingUser) (*domain.PendingUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Both sets are checked under the one lock, so a submit racing an
	// approval cannot leave a pending record next to an approved user.
	for _, u := range r.s.users {
		if u.Email == pending.Email {
			return nil, domain.ErrUserExists
		}
	}
	for _, p := range r.s.pending {
		if p.Email == pending.Email {
			return nil, domain.ErrPendingExists
		}
	}

	stored := *pending
	stored.ID = newID()
	r.s.pending[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *UserRepository) FindPendingByEmail(_ context.Context, email string) (*domain.PendingUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.pending {
		if p.Email == email {
			out := *p
			return &out, nil
		}
	}
	return nil, domain.ErrPendingNotFound
}

func (r *UserRepository) FindPendingByID(_ context.Context, id string) (*domain.PendingUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pending[id]
	if !ok {
		return nil, domain.ErrPendingNotFound
	}
	out := *p
	return &out, nil
}

func (r *UserRepository) DeletePending(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pending[id]; !ok {
		return domain.ErrPendingNotFound
	}
	delete(r.s.pending, id)
	return nil
}

func (r *UserRepository) ListPending(_ context.Context) ([]domain.PendingUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.PendingUser, 0, len(r.s.pending))
	for _, p := range r.s.pending {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *UserRepository) SaveCredential(_ context.Context, email, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.credentials[email] = &domain.Credential{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	return nil
}

func (r *UserRepository) FindCredential(_ context.Context, email string) (*domain.Credential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.credentials[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *c
	return &out, nil
}

func (r *UserRepository) DeleteCredential(_ context.Context, email string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.credentials, email)
	return nil
}
