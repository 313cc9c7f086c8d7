package ports

import (
	"context"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// UserAdminService is the admin-only account directory: listing every
// account and creating pre-approved ones without the pending workflow.
// Password hashes live in the credential store, so listings never carry
// them.
type UserAdminService interface {
	List(ctx context.Context, actor Claims) ([]domain.User, error)
	Create(ctx context.Context, actor Claims, input RegistrationInput) (*domain.User, error)
}
