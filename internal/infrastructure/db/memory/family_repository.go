package memory

import (
	"context"
	"sort"
	"time"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// FamilyRepository implements ports.FamilyRepository on the in-process store.
type FamilyRepository struct {
	s *Store
}

func NewFamilyRepository(s *Store) *FamilyRepository {
	return &FamilyRepository{s: s}
}

func (r *FamilyRepository) Create(_ context.Context, family *domain.Family) (*domain.Family, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *family
	stored.ID = newID()
	r.s.families[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *FamilyRepository) UpdateStatus(_ context.Context, id string, status domain.FamilyStatus) (*domain.Family, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.families[id]
	if !ok {
		return nil, domain.ErrFamilyNotFound
	}
	f.Status = status
	f.UpdatedAt = time.Now().UTC()

	out := *f
	return &out, nil
}

func (r *FamilyRepository) FindByID(_ context.Context, id string) (*domain.Family, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.families[id]
	if !ok {
		return nil, domain.ErrFamilyNotFound
	}
	out := *f
	return &out, nil
}

func (r *FamilyRepository) List(_ context.Context) ([]domain.Family, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Family, 0, len(r.s.families))
	for _, f := range r.s.families {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
