package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// defaultBcryptCost is deliberately above bcrypt.DefaultCost to slow down
// offline brute force against a leaked credential store.
const defaultBcryptCost = 12

var adminOnly = []domain.Role{domain.RoleAdmin}

// RegistrationService runs the pending → approved/rejected workflow.
type RegistrationService struct {
	repo       ports.UserRepository
	dispatcher ports.NotificationDispatcher // optional
	bcryptCost int
	log        zerolog.Logger
}

func NewRegistrationService(repo ports.UserRepository, dispatcher ports.NotificationDispatcher, bcryptCost int, log zerolog.Logger) *RegistrationService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = defaultBcryptCost
	}
	return &RegistrationService{repo: repo, dispatcher: dispatcher, bcryptCost: bcryptCost, log: log}
}

// Submit creates a pending registration. The storage layer's uniqueness
// guarantee is the real gate against concurrent duplicates; the explicit
// pre-checks only pick the friendlier of the two conflict errors.
func (s *RegistrationService) Submit(ctx context.Context, in ports.RegistrationInput) (*domain.PendingUser, error) {
	if in.Email == "" || in.Password == "" || in.Username == "" || in.Motivation == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if in.Role == "" {
		in.Role = domain.RoleVisiteur
	}
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	// 1. Conflict pre-checks.
	if _, err := s.repo.FindUserByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	}
	if _, err := s.repo.FindPendingByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrPendingExists
	}

	// 2. Hash before any write; the plaintext goes no further.
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("submit registration: hash password: %w", err)
	}

	// 3. Insert the pending record first: its unique email index is the
	// atomic check-and-insert gate.
	pending := &domain.PendingUser{
		Username:       in.Username,
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Role:           in.Role,
		PhoneNumber:    in.PhoneNumber,
		Motivation:     in.Motivation,
		Experience:     in.Experience,
		Specialization: in.Specialization,
		Status:         domain.RegistrationPending,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := s.repo.CreatePending(ctx, pending)
	if err != nil {
		return nil, err
	}

	// 4. Store the credential; roll the pending record back on failure so no
	// partial state survives.
	if err := s.repo.SaveCredential(ctx, in.Email, string(hash)); err != nil {
		if delErr := s.repo.DeletePending(ctx, created.ID); delErr != nil {
			s.log.Error().Err(delErr).Str("pending_id", created.ID).Msg("rollback of pending record failed")
		}
		return nil, fmt.Errorf("submit registration: store credential: %w", err)
	}

	s.log.Info().Str("pending_id", created.ID).Str("role", string(created.Role)).Msg("registration submitted")
	return created, nil
}

// Approve converts a pending registration into an approved, active user.
// Only an authenticated admin actor may approve; the route layer checks this
// too, but the invariant must not rest on the boundary alone.
func (s *RegistrationService) Approve(ctx context.Context, actor ports.Claims, pendingID string) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	pending, err := s.repo.FindPendingByID(ctx, pendingID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:       pending.Username,
		Email:          pending.Email,
		FirstName:      pending.FirstName,
		LastName:       pending.LastName,
		Role:           pending.Role,
		PhoneNumber:    pending.PhoneNumber,
		Motivation:     pending.Motivation,
		Experience:     pending.Experience,
		Specialization: pending.Specialization,
		IsActive:       true,
		IsApproved:     true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeletePending(ctx, pendingID); err != nil {
		// The user exists now; a stale pending record is recoverable, a
		// missing user is not. Log and keep going.
		s.log.Error().Err(err).Str("pending_id", pendingID).Msg("failed to remove approved pending record")
	}

	s.notify(ports.Notification{
		Kind:      ports.NotifyRegistrationApproved,
		Recipient: created.Email,
		Subject:   "Votre compte a été approuvé",
		Body:      fmt.Sprintf("Bienvenue %s, votre accès %s est actif.", created.FirstName, created.Role),
	})

	s.log.Info().Str("user_id", created.ID).Str("admin_id", actor.UserID).Str("role", string(created.Role)).Msg("registration approved")
	return created, nil
}

// Reject removes a pending registration and its stored credential. A second
// call for the same id fails with domain.ErrPendingNotFound and mutates
// nothing.
func (s *RegistrationService) Reject(ctx context.Context, actor ports.Claims, pendingID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	pending, err := s.repo.FindPendingByID(ctx, pendingID)
	if err != nil {
		return err
	}
	if err := s.repo.DeletePending(ctx, pendingID); err != nil {
		return err
	}
	if err := s.repo.DeleteCredential(ctx, pending.Email); err != nil {
		s.log.Warn().Err(err).Str("pending_id", pendingID).Msg("failed to remove credential of rejected registration")
	}

	s.notify(ports.Notification{
		Kind:      ports.NotifyRegistrationRejected,
		Recipient: pending.Email,
		Subject:   "Votre demande d'inscription a été refusée",
		Body:      "Votre demande d'accès n'a pas été retenue.",
	})

	s.log.Info().Str("pending_id", pendingID).Str("admin_id", actor.UserID).Msg("registration rejected")
	return nil
}

// ListPending returns all open registration requests, admin only.
func (s *RegistrationService) ListPending(ctx context.Context, actor ports.Claims) ([]domain.PendingUser, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.ListPending(ctx)
}

func (s *RegistrationService) notify(n ports.Notification) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Enqueue(n)
}

func requireAdmin(actor ports.Claims) error {
	return requireRole(actor, adminOnly)
}
