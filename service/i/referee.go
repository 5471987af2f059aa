package i

import (
	"context"

	"github.com/beka-birhanu/icare/domain"
	"github.com/beka-birhanu/icare/route"
	"github.com/google/uuid"
)

// Maze is the maze a referee judges proposals against.
type Maze interface {
	route.Mover
	Grid() route.Grid
	String() string
}

// Referee lets players author a proposal and submit it for a verdict.
type Referee interface {
	Course() domain.Course
	Draft(ctx context.Context, playerID uuid.UUID) (route.Steps, error)
	AppendStep(ctx context.Context, playerID uuid.UUID, dir route.DirectionID, countText string) (route.Steps, error)
	UpdateCount(ctx context.Context, playerID uuid.UUID, index int, countText string) (route.Steps, error)
	RemoveStep(ctx context.Context, playerID uuid.UUID, index int) (route.Steps, error)
	ReorderStep(ctx context.Context, playerID uuid.UUID, from, to int) (route.Steps, error)
	Clear(ctx context.Context, playerID uuid.UUID) error
	Submit(ctx context.Context, playerID uuid.UUID) (*domain.Attempt, error)
	Attempts(ctx context.Context, playerID uuid.UUID, limit int64) ([]*domain.Attempt, error)
	Leaderboard(ctx context.Context, limit int64) ([]domain.Standing, error)
}
