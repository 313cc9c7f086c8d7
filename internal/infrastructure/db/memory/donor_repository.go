package memory

import (
	"context"
	"sort"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// DonorRepository implements ports.DonorRepository on the in-process store.
type DonorRepository struct {
	s *Store
}

func NewDonorRepository(s *Store) *DonorRepository {
	return &DonorRepository{s: s}
}

func (r *DonorRepository) Create(_ context.Context, donor *domain.Donor) (*domain.Donor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, d := range r.s.donors {
		if d.UserID == donor.UserID {
			return nil, domain.ErrDonorExists
		}
	}

	stored := *donor
	stored.ID = newID()
	r.s.donors[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *DonorRepository) FindByUserID(_ context.Context, userID string) (*domain.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.donors {
		if d.UserID == userID {
			out := *d
			return &out, nil
		}
	}
	return nil, domain.ErrDonorNotFound
}

func (r *DonorRepository) List(_ context.Context) ([]domain.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Donor, 0, len(r.s.donors))
	for _, d := range r.s.donors {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
