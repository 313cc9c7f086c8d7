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

const collectionDonors = "donors"

// DonorRepository implements ports.DonorRepository on MongoDB. The unique
// user_id index enforces one profile per account.
type DonorRepository struct {
	col *mongo.Collection
}

func NewDonorRepository(db *mongo.Database) *DonorRepository {
	return &DonorRepository{col: db.Collection(collectionDonors)}
}

// EnsureIndexes creates the unique user_id index. Must run before serving.
func (r *DonorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("donors index: %w", err)
	}
	return nil
}

func (r *DonorRepository) Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *donor
	stored.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDonorExists
		}
		return nil, fmt.Errorf("insert donor: %w", err)
	}
	return &stored, nil
}

func (r *DonorRepository) FindByUserID(ctx context.Context, userID string) (*domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var donor domain.Donor
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&donor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, fmt.Errorf("find donor: %w", err)
	}
	return &donor, nil
}

func (r *DonorRepository) List(ctx context.Context) ([]domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Donor
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return out, nil
}
