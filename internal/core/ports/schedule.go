package ports

import (
	"context"
	"time"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

// ScheduleInput carries the mutable fields of a planning event.
type ScheduleInput struct {
	Title        string
	Description  string
	StartsAt     time.Time
	EndsAt       time.Time
	Type         domain.EventType
	Responsible  string
	Participants []string
	Status       domain.EventStatus
}

// ScheduleRepository persists planning events.
type ScheduleRepository interface {
	Create(ctx context.Context, event *domain.ScheduleEvent) (*domain.ScheduleEvent, error)
	Update(ctx context.Context, event *domain.ScheduleEvent) (*domain.ScheduleEvent, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.ScheduleEvent, error)
	List(ctx context.Context) ([]domain.ScheduleEvent, error)
}

// ScheduleService defines use-case operations on the planning calendar.
type ScheduleService interface {
	List(ctx context.Context, actor Claims) ([]domain.ScheduleEvent, error)
	Create(ctx context.Context, actor Claims, input ScheduleInput) (*domain.ScheduleEvent, error)
	Update(ctx context.Context, actor Claims, id string, input ScheduleInput) (*domain.ScheduleEvent, error)
	Delete(ctx context.Context, actor Claims, id string) error
}
