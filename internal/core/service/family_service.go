package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// familyReviewers may list, register, and decide on family applications.
var familyReviewers = []domain.Role{domain.RoleAdmin, domain.RoleAssistantSocial}

// FamilyService implements use cases on adoption/foster-care applications.
type FamilyService struct {
	repo ports.FamilyRepository
	log  zerolog.Logger
}

func NewFamilyService(repo ports.FamilyRepository, log zerolog.Logger) *FamilyService {
	return &FamilyService{repo: repo, log: log}
}

func (s *FamilyService) List(ctx context.Context, actor ports.Claims) ([]domain.Family, error) {
	if err := requireRole(actor, familyReviewers); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *FamilyService) Create(ctx context.Context, actor ports.Claims, in ports.FamilyInput) (*domain.Family, error) {
	if err := requireRole(actor, familyReviewers); err != nil {
		return nil, err
	}
	if in.Type == "" {
		in.Type = domain.FamilyAdoption
	}

	now := time.Now().UTC()
	family := &domain.Family{
		Name:            in.Name,
		ContactName:     in.ContactName,
		Email:           in.Email,
		Phone:           in.Phone,
		Address:         in.Address,
		Type:            in.Type,
		Status:          domain.FamilyPending,
		ChildrenWanted:  in.ChildrenWanted,
		AgeMin:          in.AgeMin,
		AgeMax:          in.AgeMax,
		SexPreference:   in.SexPreference,
		Motivation:      in.Motivation,
		FamilySituation: in.FamilySituation,
		MonthlyIncome:   in.MonthlyIncome,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := s.repo.Create(ctx, family)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("family_id", created.ID).Str("type", string(created.Type)).Msg("family application registered")
	return created, nil
}

// Decide moves an application to approved or rejected.
func (s *FamilyService) Decide(ctx context.Context, actor ports.Claims, id string, status domain.FamilyStatus) (*domain.Family, error) {
	if err := requireRole(actor, familyReviewers); err != nil {
		return nil, err
	}
	if status != domain.FamilyApproved && status != domain.FamilyRejected {
		return nil, domain.ErrInvalidAction
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("family_id", id).Str("status", string(status)).Str("decided_by", actor.UserID).Msg("family application decided")
	return updated, nil
}
