package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// scheduleEditors may create, update, and delete planning events.
var scheduleEditors = []domain.Role{domain.RoleAdmin, domain.RoleMedecin, domain.RoleAssistantSocial}

// ScheduleService implements use cases on the planning calendar.
type ScheduleService struct {
	repo ports.ScheduleRepository
	log  zerolog.Logger
}

func NewScheduleService(repo ports.ScheduleRepository, log zerolog.Logger) *ScheduleService {
	return &ScheduleService{repo: repo, log: log}
}

func (s *ScheduleService) List(ctx context.Context, actor ports.Claims) ([]domain.ScheduleEvent, error) {
	if err := requireAuth(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *ScheduleService) Create(ctx context.Context, actor ports.Claims, in ports.ScheduleInput) (*domain.ScheduleEvent, error) {
	if err := requireRole(actor, scheduleEditors); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.ScheduleEvent{
		Title:        in.Title,
		Description:  in.Description,
		StartsAt:     in.StartsAt,
		EndsAt:       in.EndsAt,
		Type:         in.Type,
		Responsible:  in.Responsible,
		Participants: in.Participants,
		Status:       in.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if event.Status == "" {
		event.Status = domain.EventPlanned
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("event_id", created.ID).Str("type", string(created.Type)).Msg("schedule event created")
	return created, nil
}

func (s *ScheduleService) Update(ctx context.Context, actor ports.Claims, id string, in ports.ScheduleInput) (*domain.ScheduleEvent, error) {
	if err := requireRole(actor, scheduleEditors); err != nil {
		return nil, err
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = in.Title
	event.Description = in.Description
	event.StartsAt = in.StartsAt
	event.EndsAt = in.EndsAt
	event.Type = in.Type
	event.Responsible = in.Responsible
	event.Participants = in.Participants
	if in.Status != "" {
		event.Status = in.Status
	}
	event.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, event)
}

func (s *ScheduleService) Delete(ctx context.Context, actor ports.Claims, id string) error {
	if err := requireRole(actor, scheduleEditors); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
