package ports

import (
	"context"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// RegistrationInput carries all data submitted with a registration request.
type RegistrationInput struct {
	Username       string
	Email          string
	FirstName      string
	LastName       string
	Password       string
	Role           domain.Role
	PhoneNumber    string
	Motivation     string
	Experience     string
	Specialization string
}

// RegistrationService runs the pending → approved/rejected workflow.
//
// Approve, Reject and ListPending require an admin actor. The route layer
// already gates these, but the service re-checks so the invariant does not
// rest on the boundary alone.
type RegistrationService interface {
	Submit(ctx context.Context, input RegistrationInput) (*domain.PendingUser, error)
	Approve(ctx context.Context, actor Claims, pendingID string) (*domain.User, error)
	Reject(ctx context.Context, actor Claims, pendingID string) error
	ListPending(ctx context.Context, actor Claims) ([]domain.PendingUser, error)
}
