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

const (
	collectionUsers       = "users"
	collectionPending     = "pending_users"
	collectionCredentials = "credentials"
)

// UserRepository implements ports.UserRepository on MongoDB. The unique email
// indexes on users and pending_users are what makes concurrent registration
// safe; the duplicate-key translation below turns index violations into the
// domain conflict errors.
type UserRepository struct {
	users   *mongo.Collection
	pending *mongo.Collection
	creds   *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		users:   db.Collection(collectionUsers),
		pending: db.Collection(collectionPending),
		creds:   db.Collection(collectionCredentials),
	}
}

// EnsureIndexes creates the unique email indexes. Must run before serving.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	if _, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
	}); err != nil {
		return fmt.Errorf("users index: %w", err)
	}
	if _, err := r.pending.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
	}); err != nil {
		return fmt.Errorf("pending_users index: %w", err)
	}
	if _, err := r.creds.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
	}); err != nil {
		return fmt.Errorf("credentials index: %w", err)
	}
	return nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *user
	stored.ID = primitive.NewObjectID().Hex()

	if _, err := r.users.InsertOne(ctx, &stored); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &stored, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findUser(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findUser(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user domain.User
	if err := r.users.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.users.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

func (r *UserRepository) CreatePending(ctx context.Context, pending *domain.PendingUser) (*domain.PendingUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *pending
	stored.ID = primitive.NewObjectID().Hex()

	if _, err := r.pending.InsertOne(ctx, &stored); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPendingExists
		}
		return nil, fmt.Errorf("insert pending user: %w", err)
	}
	return &stored, nil
}

func (r *UserRepository) FindPendingByEmail(ctx context.Context, email string) (*domain.PendingUser, error) {
	return r.findPending(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindPendingByID(ctx context.Context, id string) (*domain.PendingUser, error) {
	return r.findPending(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findPending(ctx context.Context, filter bson.M) (*domain.PendingUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var pending domain.PendingUser
	if err := r.pending.FindOne(ctx, filter).Decode(&pending); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPendingNotFound
		}
		return nil, fmt.Errorf("find pending user: %w", err)
	}
	return &pending, nil
}

func (r *UserRepository) DeletePending(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.pending.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete pending user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPendingNotFound
	}
	return nil
}

func (r *UserRepository) ListPending(ctx context.Context) ([]domain.PendingUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.pending.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list pending users: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.PendingUser
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list pending users: %w", err)
	}
	return out, nil
}

func (r *UserRepository) SaveCredential(ctx context.Context, email, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.creds.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"password_hash": passwordHash,
			"created_at":    time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (r *UserRepository) FindCredential(ctx context.Context, email string) (*domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cred domain.Credential
	if err := r.creds.FindOne(ctx, bson.M{"email": email}).Decode(&cred); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return &cred, nil
}

func (r *UserRepository) DeleteCredential(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.creds.DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}
