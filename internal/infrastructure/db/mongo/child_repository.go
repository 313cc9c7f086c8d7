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

const collectionChildren = "children"

// ChildRepository implements ports.ChildRepository on MongoDB.
type ChildRepository struct {
	col *mongo.Collection
}

func NewChildRepository(db *mongo.Database) *ChildRepository {
	return &ChildRepository{col: db.Collection(collectionChildren)}
}

func (r *ChildRepository) Create(ctx context.Context, child *domain.Child) (*domain.Child, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *child
	stored.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, fmt.Errorf("insert child: %w", err)
	}
	return &stored, nil
}

func (r *ChildRepository) Update(ctx context.Context, child *domain.Child) (*domain.Child, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": child.ID}, child)
	if err != nil {
		return nil, fmt.Errorf("update child: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrChildNotFound
	}
	out := *child
	return &out, nil
}

func (r *ChildRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete child: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrChildNotFound
	}
	return nil
}

func (r *ChildRepository) FindByID(ctx context.Context, id string) (*domain.Child, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var child domain.Child
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&child); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrChildNotFound
		}
		return nil, fmt.Errorf("find child: %w", err)
	}
	return &child, nil
}

func (r *ChildRepository) List(ctx context.Context) ([]domain.Child, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Child
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	return out, nil
}
