package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/icare/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AttemptRepo stores submitted proposals.
type AttemptRepo struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewAttemptRepo creates an AttemptRepo on dbName.collectionName.
func NewAttemptRepo(client *mongo.Client, dbName, collectionName string) *AttemptRepo {
	return &AttemptRepo{
		collection: client.Database(dbName).Collection(collectionName),
		timeout:    2 * time.Second,
	}
}

// Save inserts an attempt.
func (r *AttemptRepo) Save(ctx context.Context, attempt *domain.Attempt) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, attempt); err != nil {
		return fmt.Errorf("saving attempt: %w", err)
	}
	return nil
}

// ByPlayer returns up to limit attempts of a player, newest first.
func (r *AttemptRepo) ByPlayer(ctx context.Context, playerID uuid.UUID, limit int64) ([]*domain.Attempt, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"playerId": playerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing attempts: %w", err)
	}
	defer cursor.Close(ctx)

	attempts := make([]*domain.Attempt, 0)
	if err := cursor.All(ctx, &attempts); err != nil {
		return nil, fmt.Errorf("decoding attempts: %w", err)
	}
	return attempts, nil
}
