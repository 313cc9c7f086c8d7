package ports

import (
	"context"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// UserRepository owns the user, pending-registration, and credential records.
//
// Implementations must enforce email uniqueness across users and across
// pending registrations at the storage layer itself (unique index, or a lock
// held across check and insert): the services' own pre-checks exist only to
// produce friendlier conflict messages and are not a substitute for this.
type UserRepository interface {
	// CreateUser persists an approved user and returns it with its assigned id.
	// A duplicate email yields domain.ErrUserExists.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreatePending persists a registration request and returns it with its
	// assigned id. A duplicate email yields domain.ErrPendingExists; an email
	// already held by an approved user yields domain.ErrUserExists where the
	// store can see both sets atomically.
	CreatePending(ctx context.Context, pending *domain.PendingUser) (*domain.PendingUser, error)
	FindPendingByEmail(ctx context.Context, email string) (*domain.PendingUser, error)
	FindPendingByID(ctx context.Context, id string) (*domain.PendingUser, error)
	// DeletePending removes a pending request; domain.ErrPendingNotFound when
	// no such record exists.
	DeletePending(ctx context.Context, id string) error
	ListPending(ctx context.Context) ([]domain.PendingUser, error)

	SaveCredential(ctx context.Context, email, passwordHash string) error
	// FindCredential returns domain.ErrUserNotFound when no hash is stored
	// for the email.
	FindCredential(ctx context.Context, email string) (*domain.Credential, error)
	DeleteCredential(ctx context.Context, email string) error
}
