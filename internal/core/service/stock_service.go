package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// stockEditors may create, update, and delete stock items.
var stockEditors = []domain.Role{domain.RoleAdmin, domain.RoleLogisticien}

// StockService implements use cases on the stock inventory.
type StockService struct {
	repo ports.StockRepository
	log  zerolog.Logger
}

func NewStockService(repo ports.StockRepository, log zerolog.Logger) *StockService {
	return &StockService{repo: repo, log: log}
}

func (s *StockService) List(ctx context.Context, actor ports.Claims) ([]domain.StockItem, error) {
	if err := requireAuth(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// ListLow returns items at or below their alert threshold.
func (s *StockService) ListLow(ctx context.Context, actor ports.Claims) ([]domain.StockItem, error) {
	items, err := s.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	low := items[:0:0]
	for i := range items {
		if items[i].LowStock() {
			low = append(low, items[i])
		}
	}
	return low, nil
}

func (s *StockService) Create(ctx context.Context, actor ports.Claims, in ports.StockInput) (*domain.StockItem, error) {
	if err := requireRole(actor, stockEditors); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.StockItem{
		Name:           in.Name,
		Category:       in.Category,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		AlertThreshold: in.AlertThreshold,
		ExpiryDate:     in.ExpiryDate,
		Supplier:       in.Supplier,
		UnitPrice:      in.UnitPrice,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("stock_id", created.ID).Str("name", created.Name).Msg("stock item created")
	return created, nil
}

func (s *StockService) Update(ctx context.Context, actor ports.Claims, id string, in ports.StockInput) (*domain.StockItem, error) {
	if err := requireRole(actor, stockEditors); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Category = in.Category
	item.Quantity = in.Quantity
	item.Unit = in.Unit
	item.AlertThreshold = in.AlertThreshold
	item.ExpiryDate = in.ExpiryDate
	item.Supplier = in.Supplier
	item.UnitPrice = in.UnitPrice
	item.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	if updated.LowStock() {
		s.log.Warn().Str("stock_id", updated.ID).Str("name", updated.Name).Int("quantity", updated.Quantity).Msg("stock at or below alert threshold")
	}
	return updated, nil
}

func (s *StockService) Delete(ctx context.Context, actor ports.Claims, id string) error {
	if err := requireRole(actor, stockEditors); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
