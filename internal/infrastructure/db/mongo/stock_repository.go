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

const collectionStock = "stock"

// StockRepository implements ports.StockRepository on MongoDB.
type StockRepository struct {
	col *mongo.Collection
}

func NewStockRepository(db *mongo.Database) *StockRepository {
	return &StockRepository{col: db.Collection(collectionStock)}
}

func (r *StockRepository) Create(ctx context.Context, item *domain.StockItem) (*domain.StockItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *item
	stored.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, fmt.Errorf("insert stock item: %w", err)
	}
	return &stored, nil
}

func (r *StockRepository) Update(ctx context.Context, item *domain.StockItem) (*domain.StockItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return nil, fmt.Errorf("update stock item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrStockItemNotFound
	}
	out := *item
	return &out, nil
}

func (r *StockRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStockItemNotFound
	}
	return nil
}

func (r *StockRepository) FindByID(ctx context.Context, id string) (*domain.StockItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var item domain.StockItem
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStockItemNotFound
		}
		return nil, fmt.Errorf("find stock item: %w", err)
	}
	return &item, nil
}

func (r *StockRepository) List(ctx context.Context) ([]domain.StockItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.StockItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	return out, nil
}
