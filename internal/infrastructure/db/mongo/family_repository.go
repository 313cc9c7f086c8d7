package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

const collectionFamilies = "families"

// FamilyRepository implements ports.FamilyRepository on MongoDB.
type FamilyRepository struct {
	col *mongo.Collection
}

func NewFamilyRepository(db *mongo.Database) *FamilyRepository {
	return &FamilyRepository{col: db.Collection(collectionFamilies)}
}

func (r *FamilyRepository) Create(ctx context.Context, family *domain.Family) (*domain.Family, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *family
	stored.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, fmt.Errorf("insert family: %w", err)
	}
	return &stored, nil
}

func (r *FamilyRepository) UpdateStatus(ctx context.Context, id string, status domain.FamilyStatus) (*domain.Family, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var family domain.Family
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&family)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFamilyNotFound
		}
		return nil, fmt.Errorf("update family status: %w", err)
	}
	return &family, nil
}

func (r *FamilyRepository) FindByID(ctx context.Context, id string) (*domain.Family, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var family domain.Family
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&family); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFamilyNotFound
		}
		return nil, fmt.Errorf("find family: %w", err)
	}
	return &family, nil
}

func (r *FamilyRepository) List(ctx context.Context) ([]domain.Family, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list families: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Family
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list families: %w", err)
	}
	return out, nil
}
