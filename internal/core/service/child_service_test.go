package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

type stubChildRepo struct {
	children map[string]*domain.Child
	nextID   int
}

func newStubChildRepo() *stubChildRepo {
	return &stubChildRepo{children: make(map[string]*domain.Child)}
}

func (r *stubChildRepo) Create(_ context.Context, c *domain.Child) (*domain.Child, error) {
	r.nextID++
	clone := *c
	clone.ID = fmt.Sprintf("child_%d", r.nextID)
	r.children[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubChildRepo) Update(_ context.Context, c *domain.Child) (*domain.Child, error) {
	if _, ok := r.children[c.ID]; !ok {
		return nil, domain.ErrChildNotFound
	}
	clone := *c
	r.children[c.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubChildRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.children[id]; !ok {
		return domain.ErrChildNotFound
	}
	delete(r.children, id)
	return nil
}

func (r *stubChildRepo) FindByID(_ context.Context, id string) (*domain.Child, error) {
	c, ok := r.children[id]
	if !ok {
		return nil, domain.ErrChildNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubChildRepo) List(_ context.Context) ([]domain.Child, error) {
	out := make([]domain.Child, 0, len(r.children))
	for _, c := range r.children {
		out = append(out, *c)
	}
	return out, nil
}

var doctorClaims = ports.Claims{UserID: "doc_1", Email: "doc@example.com", Role: domain.RoleMedecin}

func childInput(firstName string, status domain.ChildStatus) ports.ChildInput {
	return ports.ChildInput{
		FirstName:   firstName,
		LastName:    "Traoré",
		Age:         7,
		Sex:         domain.SexFemale,
		Status:      status,
		ArrivalDate: "2026-01-10",
	}
}

func TestChildService_Create_DefaultsStatusToPresent(t *testing.T) {
	repo := newStubChildRepo()
	svc := NewChildService(repo, discardLogger)

	child, err := svc.Create(context.Background(), doctorClaims, childInput("Awa", ""))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if child.Status != domain.ChildPresent {
		t.Errorf("expected default status %q, got %q", domain.ChildPresent, child.Status)
	}
	if child.CreatedBy != "doc_1" {
		t.Errorf("expected created_by %q, got %q", "doc_1", child.CreatedBy)
	}
}

func TestChildService_Create_RoleGate(t *testing.T) {
	svc := NewChildService(newStubChildRepo(), discardLogger)

	for _, role := range []domain.Role{domain.RoleSoignant, domain.RoleLogisticien, domain.RoleVisiteur, domain.RoleDonateur} {
		actor := ports.Claims{UserID: "u1", Role: role}
		if _, err := svc.Create(context.Background(), actor, childInput("Awa", "")); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("role %s: expected ErrForbidden, got %v", role, err)
		}
	}
}

func TestChildService_Delete_AdminOnly(t *testing.T) {
	repo := newStubChildRepo()
	svc := NewChildService(repo, discardLogger)

	child, err := svc.Create(context.Background(), doctorClaims, childInput("Awa", ""))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The doctor created the record but may not delete it.
	if err := svc.Delete(context.Background(), doctorClaims, child.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for doctor delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), adminClaims, child.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if err := svc.Delete(context.Background(), adminClaims, child.ID); !errors.Is(err, domain.ErrChildNotFound) {
		t.Fatalf("expected ErrChildNotFound on repeat delete, got %v", err)
	}
}

func TestChildService_ListPublic_FiltersAndRedacts(t *testing.T) {
	repo := newStubChildRepo()
	svc := NewChildService(repo, discardLogger)
	ctx := context.Background()

	_, _ = svc.Create(ctx, doctorClaims, childInput("Awa", domain.ChildPresent))
	_, _ = svc.Create(ctx, doctorClaims, childInput("Issa", domain.ChildSponsored))
	_, _ = svc.Create(ctx, doctorClaims, childInput("Mariam", domain.ChildAdopted))
	_, _ = svc.Create(ctx, doctorClaims, childInput("Sekou", domain.ChildFosterCare))

	in := childInput("Binta", domain.ChildPresent)
	in.MedicalHistory = "asthme"
	_, _ = svc.Create(ctx, doctorClaims, in)

	public, err := svc.ListPublic(ctx)
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 3 {
		t.Fatalf("only present and sponsored children are public, expected 3, got %d", len(public))
	}
	for _, p := range public {
		if p.Status != domain.ChildPresent && p.Status != domain.ChildSponsored {
			t.Errorf("unexpected status %q in public listing", p.Status)
		}
	}
}

func TestChildService_List_RequiresAuth(t *testing.T) {
	svc := NewChildService(newStubChildRepo(), discardLogger)

	if _, err := svc.List(context.Background(), ports.Claims{}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden without identity, got %v", err)
	}
}
