package memory

import (
	"context"
	"sort"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// DonationRepository implements ports.DonationRepository on the in-process store.
type DonationRepository struct {
	s *Store
}

func NewDonationRepository(s *Store) *DonationRepository {
	return &DonationRepository{s: s}
}

func (r *DonationRepository) Create(_ context.Context, donation *domain.Donation) (*domain.Donation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *donation
	stored.ID = newID()
	r.s.donations[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *DonationRepository) List(_ context.Context) ([]domain.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Donation, 0, len(r.s.donations))
	for _, d := range r.s.donations {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
