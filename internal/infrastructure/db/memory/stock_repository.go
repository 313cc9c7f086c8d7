package memory

import (
	"context"
	"sort"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// StockRepository implements ports.StockRepository on the in-process store.
type StockRepository struct {
	s *Store
}

func NewStockRepository(s *Store) *StockRepository {
	return &StockRepository{s: s}
}

func (r *StockRepository) Create(_ context.Context, item *domain.StockItem) (*domain.StockItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *item
	stored.ID = newID()
	r.s.stock[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *StockRepository) Update(_ context.Context, item *domain.StockItem) (*domain.StockItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.stock[item.ID]; !ok {
		return nil, domain.ErrStockItemNotFound
	}
	stored := *item
	r.s.stock[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *StockRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.stock[id]; !ok {
		return domain.ErrStockItemNotFound
	}
	delete(r.s.stock, id)
	return nil
}

func (r *StockRepository) FindByID(_ context.Context, id string) (*domain.StockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	item, ok := r.s.stock[id]
	if !ok {
		return nil, domain.ErrStockItemNotFound
	}
	out := *item
	return &out, nil
}

func (r *StockRepository) List(_ context.Context) ([]domain.StockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.StockItem, 0, len(r.s.stock))
	for _, item := range r.s.stock {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
