package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/icare/identity"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlayerRepo handles the persistence of players.
type PlayerRepo struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewPlayerRepo creates a PlayerRepo on dbName.collectionName and makes sure
// player names are unique.
func NewPlayerRepo(ctx context.Context, client *mongo.Client, dbName, collectionName string) (*PlayerRepo, error) {
	collection := client.Database(dbName).Collection(collectionName)
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("creating player name index: %w", err)
	}

	return &PlayerRepo{
		collection: collection,
		timeout:    2 * time.Second,
	}, nil
}

// Save inserts a new player.
func (r *PlayerRepo) Save(ctx context.Context, player *identity.Player) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, player)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return identity.ErrPlayerNameTaken
		}
		return fmt.Errorf("saving player: %w", err)
	}
	return nil
}

// ByID retrieves a player by ID.
func (r *PlayerRepo) ByID(ctx context.Context, id uuid.UUID) (*identity.Player, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// ByName retrieves a player by name.
func (r *PlayerRepo) ByName(ctx context.Context, name string) (*identity.Player, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

// IncrementSolved adds one to the player's solved counter.
func (r *PlayerRepo) IncrementSolved(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"solved": 1}})
	if err != nil {
		return fmt.Errorf("incrementing solved count: %w", err)
	}
	if res.MatchedCount == 0 {
		return identity.ErrPlayerNotFound
	}
	return nil
}

func (r *PlayerRepo) findOne(ctx context.Context, filter bson.M) (*identity.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var player identity.Player
	if err := r.collection.FindOne(ctx, filter).Decode(&player); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, identity.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("finding player: %w", err)
	}
	return &player, nil
}
