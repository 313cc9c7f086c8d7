package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// donorManagers work across all donor profiles; donorRoles are scoped to
// their own.
var (
	donorManagers = []domain.Role{domain.RoleAdmin, domain.RoleAssistantSocial}
	donorRoles    = []domain.Role{domain.RoleDonateur, domain.RoleParrain}
)

// DonorService implements use cases on donor profiles.
type DonorService struct {
	repo ports.DonorRepository
	log  zerolog.Logger
}

func NewDonorService(repo ports.DonorRepository, log zerolog.Logger) *DonorService {
	return &DonorService{repo: repo, log: log}
}

// List returns the profiles visible to the actor: their own for donors and
// sponsors, all of them for the managing roles.
func (s *DonorService) List(ctx context.Context, actor ports.Claims) ([]domain.Donor, error) {
	if err := requireAuth(actor); err != nil {
		return nil, err
	}
	if domain.Allowed(actor.Role, donorRoles) {
		profile, err := s.repo.FindByUserID(ctx, actor.UserID)
		if errors.Is(err, domain.ErrDonorNotFound) {
			return []domain.Donor{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []domain.Donor{*profile}, nil
	}
	if err := requireRole(actor, donorManagers); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Create registers a donor profile. Donors and sponsors always create their
// own; managers may create on behalf of another account.
func (s *DonorService) Create(ctx context.Context, actor ports.Claims, in ports.DonorInput) (*domain.Donor, error) {
	if err := requireAuth(actor); err != nil {
		return nil, err
	}

	userID := in.UserID
	if domain.Allowed(actor.Role, donorRoles) {
		userID = actor.UserID
	} else if err := requireRole(actor, donorManagers); err != nil {
		return nil, err
	}
	if userID == "" {
		userID = actor.UserID
	}

	now := time.Now().UTC()
	donor := &domain.Donor{
		UserID:    userID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.repo.Create(ctx, donor)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("donor_id", created.ID).Str("user_id", created.UserID).Msg("donor profile created")
	return created, nil
}
