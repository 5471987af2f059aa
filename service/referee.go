package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/icare/domain"
	"github.com/beka-birhanu/icare/route"
	"github.com/beka-birhanu/icare/service/i"
	"github.com/google/uuid"
)

const (
	defaultAttemptsLimit = 20
	maxAttemptsLimit     = 100
)

var (
	ErrMissingDependency = errors.New("missing referee dependency")
)

// RefereeConfig holds the collaborators of a Referee.
type RefereeConfig struct {
	Maze     i.Maze            // Maze proposals are replayed on.
	Start    route.Cell        // Where every proposal begins.
	Goal     route.Cell        // Where an accepted proposal ends.
	Drafts   i.DraftStore      // Live proposals, one per player.
	Attempts i.AttemptRepo     // Submission history.
	Players  i.PlayerRepo      // Solved counters.
	Recorder i.VerdictRecorder // Optional verdict metrics.
	Board    i.Leaderboard     // Optional shortest path ranking.
	Logger   i.Logger
}

// Referee judges player proposals against a single course.
type Referee struct {
	maze     i.Maze
	start    route.Cell
	goal     route.Cell
	drafts   i.DraftStore
	attempts i.AttemptRepo
	players  i.PlayerRepo
	recorder i.VerdictRecorder
	board    i.Leaderboard
	logger   i.Logger
}

// NewReferee checks the course and wires the referee.
func NewReferee(c *RefereeConfig) (*Referee, error) {
	if c.Maze == nil || c.Drafts == nil || c.Attempts == nil || c.Players == nil || c.Logger == nil {
		return nil, ErrMissingDependency
	}

	grid := c.Maze.Grid()
	if !grid.Contains(c.Start) {
		return nil, fmt.Errorf("start %s: %w", c.Start, route.ErrCellOutOfBounds)
	}
	if !grid.Contains(c.Goal) {
		return nil, fmt.Errorf("goal %s: %w", c.Goal, route.ErrCellOutOfBounds)
	}

	return &Referee{
		maze:     c.Maze,
		start:    c.Start,
		goal:     c.Goal,
		drafts:   c.Drafts,
		attempts: c.Attempts,
		players:  c.Players,
		recorder: c.Recorder,
		board:    c.Board,
		logger:   c.Logger,
	}, nil
}

// Course implements i.Referee.
func (r *Referee) Course() domain.Course {
	return domain.Course{
		Grid:   r.maze.Grid(),
		Start:  r.start,
		Goal:   r.goal,
		Layout: r.maze.String(),
	}
}

// Draft implements i.Referee.
func (r *Referee) Draft(ctx context.Context, playerID uuid.UUID) (route.Steps, error) {
	return r.drafts.Load(ctx, playerID.String())
}

// AppendStep implements i.Referee.
func (r *Referee) AppendStep(ctx context.Context, playerID uuid.UUID, dir route.DirectionID, countText string) (route.Steps, error) {
	return r.edit(ctx, playerID, func(p *route.Proposal) error {
		return p.AppendStep(dir, countText)
	})
}

// UpdateCount implements i.Referee.
func (r *Referee) UpdateCount(ctx context.Context, playerID uuid.UUID, index int, countText string) (route.Steps, error) {
	return r.edit(ctx, playerID, func(p *route.Proposal) error {
		return p.UpdateCount(index, countText)
	})
}

// RemoveStep implements i.Referee.
func (r *Referee) RemoveStep(ctx context.Context, playerID uuid.UUID, index int) (route.Steps, error) {
	return r.edit(ctx, playerID, func(p *route.Proposal) error {
		return p.RemoveStep(index)
	})
}

// ReorderStep implements i.Referee.
func (r *Referee) ReorderStep(ctx context.Context, playerID uuid.UUID, from, to int) (route.Steps, error) {
	return r.edit(ctx, playerID, func(p *route.Proposal) error {
		return p.ReorderStep(from, to)
	})
}

// Clear implements i.Referee.
func (r *Referee) Clear(ctx context.Context, playerID uuid.UUID) error {
	_, err := r.edit(ctx, playerID, func(p *route.Proposal) error {
		p.Clear()
		return nil
	})
	return err
}

func (r *Referee) edit(ctx context.Context, playerID uuid.UUID, fn func(*route.Proposal) error) (route.Steps, error) {
	steps, err := r.drafts.Update(ctx, playerID.String(), fn)
	if err != nil {
		if errors.Is(err, route.ErrInvalidCount) || errors.Is(err, route.ErrUnknownDirection) || errors.Is(err, route.ErrIndexOutOfRange) {
			r.logger.Warning(fmt.Sprintf("rejected edit for player %s: %s", playerID, err))
		} else {
			r.logger.Error(fmt.Sprintf("editing draft of player %s: %s", playerID, err))
		}
		return nil, err
	}
	return steps, nil
}

// Submit implements i.Referee.
//
// The draft is snapshotted under its lock and replayed. The verdict is stored
// as an attempt, and an accepted one also bumps the solved counter and the
// leaderboard. Failures in that bookkeeping are logged but do not change the
// verdict returned to the player.
func (r *Referee) Submit(ctx context.Context, playerID uuid.UUID) (*domain.Attempt, error) {
	steps, err := r.drafts.Take(ctx, playerID.String())
	if err != nil {
		r.logger.Error(fmt.Sprintf("taking draft of player %s: %s", playerID, err))
		return nil, err
	}

	verdict, err := route.Validate(steps, r.start, r.goal, r.maze.Grid(), r.maze)
	if err != nil {
		r.logger.Error(fmt.Sprintf("validating proposal of player %s [%s]: %s", playerID, steps, err))
		return nil, err
	}

	r.logger.Info(fmt.Sprintf("player %s submitted [%s]: %s", playerID, steps, verdict))
	if r.recorder != nil {
		r.recorder.RecordVerdict(verdict, steps)
	}

	attempt := domain.NewAttempt(playerID, steps, r.start, r.goal, verdict)
	if err := r.attempts.Save(ctx, attempt); err != nil {
		r.logger.Error(fmt.Sprintf("saving attempt %s: %s", attempt.ID, err))
	}
	if verdict.Accepted() {
		if err := r.players.IncrementSolved(ctx, playerID); err != nil {
			r.logger.Error(fmt.Sprintf("updating solved count of player %s: %s", playerID, err))
		}
		if r.board != nil {
			if err := r.board.Submit(ctx, playerID, steps.UnitMoves()); err != nil {
				r.logger.Error(fmt.Sprintf("ranking player %s: %s", playerID, err))
			}
		}
	}

	return attempt, nil
}

// Attempts implements i.Referee.
func (r *Referee) Attempts(ctx context.Context, playerID uuid.UUID, limit int64) ([]*domain.Attempt, error) {
	if limit <= 0 {
		limit = defaultAttemptsLimit
	}
	limit = min(limit, maxAttemptsLimit)
	return r.attempts.ByPlayer(ctx, playerID, limit)
}

// Leaderboard implements i.Referee.
func (r *Referee) Leaderboard(ctx context.Context, limit int64) ([]domain.Standing, error) {
	if r.board == nil {
		return []domain.Standing{}, nil
	}
	if limit <= 0 {
		limit = defaultAttemptsLimit
	}
	return r.board.Top(ctx, min(limit, maxAttemptsLimit))
}
