package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

type stubStockRepo struct {
	items  map[string]*domain.StockItem
	nextID int
}

func newStubStockRepo() *stubStockRepo {
	return &stubStockRepo{items: make(map[string]*domain.StockItem)}
}

func (r *stubStockRepo) Create(_ context.Context, item *domain.StockItem) (*domain.StockItem, error) {
	r.nextID++
	clone := *item
	clone.ID = fmt.Sprintf("stock_%d", r.nextID)
	r.items[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubStockRepo) Update(_ context.Context, item *domain.StockItem) (*domain.StockItem, error) {
	if _, ok := r.items[item.ID]; !ok {
		return nil, domain.ErrStockItemNotFound
	}
	clone := *item
	r.items[item.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubStockRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrStockItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubStockRepo) FindByID(_ context.Context, id string) (*domain.StockItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrStockItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *stubStockRepo) List(_ context.Context) ([]domain.StockItem, error) {
	out := make([]domain.StockItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

var logisticianClaims = ports.Claims{UserID: "log_1", Email: "log@example.com", Role: domain.RoleLogisticien}

func stockInput(name string, quantity, threshold int) ports.StockInput {
	return ports.StockInput{
		Name:           name,
		Category:       "alimentation",
		Quantity:       quantity,
		Unit:           "kg",
		AlertThreshold: threshold,
	}
}

func TestStockService_ListLow(t *testing.T) {
	repo := newStubStockRepo()
	svc := NewStockService(repo, discardLogger)
	ctx := context.Background()

	_, _ = svc.Create(ctx, logisticianClaims, stockInput("riz", 50, 10))
	_, _ = svc.Create(ctx, logisticianClaims, stockInput("lait", 5, 10))
	_, _ = svc.Create(ctx, logisticianClaims, stockInput("savon", 10, 10)) // at threshold counts as low

	low, err := svc.ListLow(ctx, logisticianClaims)
	if err != nil {
		t.Fatalf("list low: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("expected 2 low items, got %d", len(low))
	}
	for _, item := range low {
		if item.Quantity > item.AlertThreshold {
			t.Errorf("item %q is not low: %d > %d", item.Name, item.Quantity, item.AlertThreshold)
		}
	}
}

func TestStockService_WriteRoleGate(t *testing.T) {
	svc := NewStockService(newStubStockRepo(), discardLogger)

	for _, role := range []domain.Role{domain.RoleMedecin, domain.RoleSoignant, domain.RoleVisiteur} {
		actor := ports.Claims{UserID: "u1", Role: role}
		if _, err := svc.Create(context.Background(), actor, stockInput("riz", 50, 10)); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("role %s: expected ErrForbidden, got %v", role, err)
		}
	}
}

func TestStockService_Update_NotFound(t *testing.T) {
	svc := NewStockService(newStubStockRepo(), discardLogger)

	if _, err := svc.Update(context.Background(), logisticianClaims, "missing", stockInput("riz", 1, 1)); !errors.Is(err, domain.ErrStockItemNotFound) {
		t.Errorf("expected ErrStockItemNotFound, got %v", err)
	}
}
