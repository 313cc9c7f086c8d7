package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// childEditors may create and update children's records.
var childEditors = []domain.Role{domain.RoleAdmin, domain.RoleMedecin, domain.RoleAssistantSocial}

// ChildService implements use cases on children's records.
type ChildService struct {
	repo ports.ChildRepository
	log  zerolog.Logger
}

func NewChildService(repo ports.ChildRepository, log zerolog.Logger) *ChildService {
	return &ChildService{repo: repo, log: log}
}

func (s *ChildService) List(ctx context.Context, actor ports.Claims) ([]domain.Child, error) {
	if err := requireAuth(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// ListPublic serves the unauthenticated sponsorship page: only children still
// present or already sponsored, reduced to non-identifying fields.
func (s *ChildService) ListPublic(ctx context.Context) ([]domain.PublicChild, error) {
	children, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	public := make([]domain.PublicChild, 0, len(children))
	for i := range children {
		switch children[i].Status {
		case domain.ChildPresent, domain.ChildSponsored:
			public = append(public, children[i].Public())
		}
	}
	return public, nil
}

func (s *ChildService) Create(ctx context.Context, actor ports.Claims, in ports.ChildInput) (*domain.Child, error) {
	if err := requireRole(actor, childEditors); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	child := &domain.Child{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		BirthDate:       in.BirthDate,
		Age:             in.Age,
		Sex:             in.Sex,
		Photo:           in.Photo,
		Status:          in.Status,
		ArrivalDate:     in.ArrivalDate,
		MedicalHistory:  in.MedicalHistory,
		Allergies:       in.Allergies,
		Medications:     in.Medications,
		MedicalNotes:    in.MedicalNotes,
		ReferringDoctor: in.ReferringDoctor,
		CreatedBy:       actor.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if child.Status == "" {
		child.Status = domain.ChildPresent
	}

	created, err := s.repo.Create(ctx, child)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("child_id", created.ID).Str("created_by", actor.UserID).Msg("child record created")
	return created, nil
}

func (s *ChildService) Update(ctx context.Context, actor ports.Claims, id string, in ports.ChildInput) (*domain.Child, error) {
	if err := requireRole(actor, childEditors); err != nil {
		return nil, err
	}

	child, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	child.FirstName = in.FirstName
	child.LastName = in.LastName
	child.BirthDate = in.BirthDate
	child.Age = in.Age
	child.Sex = in.Sex
	child.Photo = in.Photo
	child.Status = in.Status
	child.ArrivalDate = in.ArrivalDate
	child.MedicalHistory = in.MedicalHistory
	child.Allergies = in.Allergies
	child.Medications = in.Medications
	child.MedicalNotes = in.MedicalNotes
	child.ReferringDoctor = in.ReferringDoctor
	child.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, child)
}

func (s *ChildService) Delete(ctx context.Context, actor ports.Claims, id string) error {
	if err := requireRole(actor, adminOnly); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("child_id", id).Str("deleted_by", actor.UserID).Msg("child record deleted")
	return nil
}
