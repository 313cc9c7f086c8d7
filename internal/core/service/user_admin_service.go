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

// UserAdminService implements the admin account directory. Accounts created
// here are active and approved immediately, bypassing the pending workflow.
type UserAdminService struct {
	repo       ports.UserRepository
	bcryptCost int
	log        zerolog.Logger
}

func NewUserAdminService(repo ports.UserRepository, bcryptCost int, log zerolog.Logger) *UserAdminService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = defaultBcryptCost
	}
	return &UserAdminService{repo: repo, bcryptCost: bcryptCost, log: log}
}

// List returns every account, admin only. Password hashes live in the
// credential store and never appear on the User record.
func (s *UserAdminService) List(ctx context.Context, actor ports.Claims) ([]domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.ListUsers(ctx)
}

// Create provisions an approved, active account directly.
func (s *UserAdminService) Create(ctx context.Context, actor ports.Claims, in ports.RegistrationInput) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if in.Email == "" || in.Password == "" || in.Username == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if in.Role == "" {
		in.Role = domain.RoleVisiteur
	}
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindUserByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	}
	if _, err := s.repo.FindPendingByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrPendingExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("create account: hash password: %w", err)
	}
	if err := s.repo.SaveCredential(ctx, in.Email, string(hash)); err != nil {
		return nil, fmt.Errorf("create account: store credential: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:       in.Username,
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Role:           in.Role,
		PhoneNumber:    in.PhoneNumber,
		Motivation:     in.Motivation,
		Experience:     in.Experience,
		Specialization: in.Specialization,
		IsActive:       true,
		IsApproved:     true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		// The credential went in first; take it back out so a failed create
		// leaves nothing behind.
		if delErr := s.repo.DeleteCredential(ctx, in.Email); delErr != nil {
			s.log.Error().Err(delErr).Str("email", in.Email).Msg("rollback of credential failed")
		}
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("admin_id", actor.UserID).Str("role", string(created.Role)).Msg("account created by admin")
	return created, nil
}
