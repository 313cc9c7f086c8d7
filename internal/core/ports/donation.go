package ports

import (
	"context"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// DonationInput carries the fields submitted with a new donation.
type DonationInput struct {
	DonorName  string
	DonorEmail string
	Amount     float64
	Type       domain.DonationType
	Date       string
	Message    string
}

// DonationRepository persists donation records.
type DonationRepository interface {
	Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error)
	List(ctx context.Context) ([]domain.Donation, error)
}

// DonationService defines use-case operations on donations.
type DonationService interface {
	List(ctx context.Context, actor Claims) ([]domain.Donation, error)
	Create(ctx context.Context, actor Claims, input DonationInput) (*domain.Donation, error)
}
