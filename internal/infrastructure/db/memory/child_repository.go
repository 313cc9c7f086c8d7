package memory

import (
	"context"
	"sort"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// ChildRepository implements ports.ChildRepository on the in-process store.
type ChildRepository struct {
	s *Store
}

func NewChildRepository(s *Store) *ChildRepository {
	return &ChildRepository{s: s}
}

func (r *ChildRepository) Create(_ context.Context, child *domain.Child) (*domain.Child, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *child
	stored.ID = newID()
	r.s.children[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *ChildRepository) Update(_ context.Context, child *domain.Child) (*domain.Child, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.children[child.ID]; !ok {
		return nil, domain.ErrChildNotFound
	}
	stored := *child
	r.s.children[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *ChildRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.children[id]; !ok {
		return domain.ErrChildNotFound
	}
	delete(r.s.children, id)
	return nil
}

func (r *ChildRepository) FindByID(_ context.Context, id string) (*domain.Child, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.children[id]
	if !ok {
		return nil, domain.ErrChildNotFound
	}
	out := *c
	return &out, nil
}

func (r *ChildRepository) List(_ context.Context) ([]domain.Child, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Child, 0, len(r.s.children))
	for _, c := range r.s.children {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
