package ports

import (
	"context"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// DonorInput carries the fields of a donor profile. UserID is honored only
// when the actor may manage profiles on behalf of others; donors always get
// their own.
type DonorInput struct {
	UserID  string
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// DonorRepository persists donor profiles, at most one per account.
type DonorRepository interface {
	// Create persists a profile and returns it with its assigned id. A second
	// profile for the same user yields domain.ErrDonorExists.
	Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Donor, error)
	List(ctx context.Context) ([]domain.Donor, error)
}

// DonorService defines use-case operations on donor profiles. Donors and
// sponsors only ever see and create their own profile; the social team and
// admins work across all of them.
type DonorService interface {
	List(ctx context.Context, actor Claims) ([]domain.Donor, error)
	Create(ctx context.Context, actor Claims, input DonorInput) (*domain.Donor, error)
}
