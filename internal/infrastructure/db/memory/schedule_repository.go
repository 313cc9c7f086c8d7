package memory

import (
	"context"
	"sort"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// ScheduleRepository implements ports.ScheduleRepository on the in-process store.
type ScheduleRepository struct {
	s *Store
}

func NewScheduleRepository(s *Store) *ScheduleRepository {
	return &ScheduleRepository{s: s}
}

func (r *ScheduleRepository) Create(_ context.Context, event *domain.ScheduleEvent) (*domain.ScheduleEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *event
	stored.ID = newID()
	stored.Participants = append([]string(nil), event.Participants...)
	r.s.events[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *ScheduleRepository) Update(_ context.Context, event *domain.ScheduleEvent) (*domain.ScheduleEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[event.ID]; !ok {
		return nil, domain.ErrEventNotFound
	}
	stored := *event
	stored.Participants = append([]string(nil), event.Participants...)
	r.s.events[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *ScheduleRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.s.events, id)
	return nil
}

func (r *ScheduleRepository) FindByID(_ context.Context, id string) (*domain.ScheduleEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	out := *e
	return &out, nil
}

func (r *ScheduleRepository) List(_ context.Context) ([]domain.ScheduleEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.ScheduleEvent, 0, len(r.s.events))
	for _, e := range r.s.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartsAt.Equal(out[j].StartsAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartsAt.Before(out[j].StartsAt)
	})
	return out, nil
}
