package ports

import (
	"context"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// StockInput carries the mutable fields of a stock item.
type StockInput struct {
	Name           string
	Category       string
	Quantity       int
	Unit           string
	AlertThreshold int
	ExpiryDate     string
	Supplier       string
	UnitPrice      float64
}

// StockRepository persists stock items.
type StockRepository interface {
	Create(ctx context.Context, item *domain.StockItem) (*domain.StockItem, error)
	Update(ctx context.Context, item *domain.StockItem) (*domain.StockItem, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.StockItem, error)
	List(ctx context.Context) ([]domain.StockItem, error)
}

// StockService defines use-case operations on the stock inventory.
type StockService interface {
	List(ctx context.Context, actor Claims) ([]domain.StockItem, error)
	// ListLow returns only items at or below their alert threshold.
	ListLow(ctx context.Context, actor Claims) ([]domain.StockItem, error)
	Create(ctx context.Context, actor Claims, input StockInput) (*domain.StockItem, error)
	Update(ctx context.Context, actor Claims, id string, input StockInput) (*domain.StockItem, error)
	Delete(ctx context.Context, actor Claims, id string) error
}
