package ports

import (
	"context"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// ChildInput carries the mutable fields of a child record.
type ChildInput struct {
	FirstName       string
	LastName        string
	BirthDate       string
	Age             int
	Sex             domain.Sex
	Photo           string
	Status          domain.ChildStatus
	ArrivalDate     string
	MedicalHistory  string
	Allergies       string
	Medications     string
	MedicalNotes    string
	ReferringDoctor string
}

// ChildRepository persists child records.
type ChildRepository interface {
	Create(ctx context.Context, child *domain.Child) (*domain.Child, error)
	Update(ctx context.Context, child *domain.Child) (*domain.Child, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Child, error)
	List(ctx context.Context) ([]domain.Child, error)
}

// ChildService defines use-case operations on children's records.
type ChildService interface {
	List(ctx context.Context, actor Claims) ([]domain.Child, error)
	// ListPublic returns the reduced sponsorship view; no actor required.
	ListPublic(ctx context.Context) ([]domain.PublicChild, error)
	Create(ctx context.Context, actor Claims, input ChildInput) (*domain.Child, error)
	Update(ctx context.Context, actor Claims, id string, input ChildInput) (*domain.Child, error)
	Delete(ctx context.Context, actor Claims, id string) error
}
