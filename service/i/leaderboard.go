package i

import (
	"context"

	"github.com/beka-birhanu/icare/domain"
	"github.com/google/uuid"
)

// Leaderboard ranks players by the shortest accepted proposal.
type Leaderboard interface {
	// Submit records moves for the player if it beats their best.
	Submit(ctx context.Context, playerID uuid.UUID, moves int) error
	// Top returns up to n standings, fewest moves first.
	Top(ctx context.Context, n int64) ([]domain.Standing, error)
}
