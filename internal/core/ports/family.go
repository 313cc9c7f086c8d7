package ports

import (
	"context"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// FamilyInput carries the fields of an adoption/foster-care application.
type FamilyInput struct {
	Name            string
	ContactName     string
	Email           string
	Phone           string
	Address         string
	Type            domain.FamilyType
	ChildrenWanted  int
	AgeMin          int
	AgeMax          int
	SexPreference   domain.SexPreference
	Motivation      string
	FamilySituation string
	MonthlyIncome   float64
}

// FamilyRepository persists family applications.
type FamilyRepository interface {
	Create(ctx context.Context, family *domain.Family) (*domain.Family, error)
	UpdateStatus(ctx context.Context, id string, status domain.FamilyStatus) (*domain.Family, error)
	FindByID(ctx context.Context, id string) (*domain.Family, error)
	List(ctx context.Context) ([]domain.Family, error)
}

// FamilyService defines use-case operations on family applications.
type FamilyService interface {
	List(ctx context.Context, actor Claims) ([]domain.Family, error)
	Create(ctx context.Context, actor Claims, input FamilyInput) (*domain.Family, error)
	Decide(ctx context.Context, actor Claims, id string, status domain.FamilyStatus) (*domain.Family, error)
}
