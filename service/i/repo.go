package i

import (
	"context"

	"github.com/beka-birhanu/icare/domain"
	"github.com/beka-birhanu/icare/identity"
	"github.com/google/uuid"
)

// PlayerRepo defines the persistence operations for players.
type PlayerRepo interface {
	// Save inserts a new player. Returns identity.ErrPlayerNameTaken on a
	// name conflict.
	Save(ctx context.Context, player *identity.Player) error

	// ByID retrieves a player by ID.
	ByID(ctx context.Context, id uuid.UUID) (*identity.Player, error)

	// ByName retrieves a player by name.
	ByName(ctx context.Context, name string) (*identity.Player, error)

	// IncrementSolved adds one to the player's solved counter.
	IncrementSolved(ctx context.Context, id uuid.UUID) error
}

// AttemptRepo stores submitted proposals and their verdicts.
type AttemptRepo interface {
	Save(ctx context.Context, attempt *domain.Attempt) error

	// ByPlayer returns the most recent attempts of a player, newest first.
	ByPlayer(ctx context.Context, playerID uuid.UUID, limit int64) ([]*domain.Attempt, error)
}
