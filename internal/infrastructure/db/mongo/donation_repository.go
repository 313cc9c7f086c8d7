package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
)

const collectionDonations = "donations"

// DonationRepository implements ports.DonationRepository on MongoDB.
type DonationRepository struct {
	col *mongo.Collection
}

func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{col: db.Collection(collectionDonations)}
}

func (r *DonationRepository) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *donation
	stored.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, fmt.Errorf("insert donation: %w", err)
	}
	return &stored, nil
}

func (r *DonationRepository) List(ctx context.Context) ([]domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Donation
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return out, nil
}
