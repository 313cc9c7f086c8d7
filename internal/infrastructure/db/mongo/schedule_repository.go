package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

const collectionSchedule = "schedule_events"

// ScheduleRepository implements ports.ScheduleRepository on MongoDB.
type ScheduleRepository struct {
	col *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{col: db.Collection(collectionSchedule)}
}

func (r *ScheduleRepository) Create(ctx context.Context, event *domain.ScheduleEvent) (*domain.ScheduleEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *event
	stored.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, fmt.Errorf("insert schedule event: %w", err)
	}
	return &stored, nil
}

func (r *ScheduleRepository) Update(ctx context.Context, event *domain.ScheduleEvent) (*domain.ScheduleEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err != nil {
		return nil, fmt.Errorf("update schedule event: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrEventNotFound
	}
	out := *event
	return &out, nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete schedule event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*domain.ScheduleEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var event domain.ScheduleEvent
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find schedule event: %w", err)
	}
	return &event, nil
}

func (r *ScheduleRepository) List(ctx context.Context) ([]domain.ScheduleEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list schedule events: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.ScheduleEvent
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list schedule events: %w", err)
	}
	return out, nil
}
