package route

import (
	"errors"
	"fmt"
)

var (
	ErrContractViolation = errors.New("maze returned an illegal move")
)

// Outcome classifies a verdict.
type Outcome int

const (
	Success Outcome = iota
	Blocked
	Incomplete
)

var outcomeNames = map[Outcome]string{
	Success:    "SUCCESS",
	Blocked:    "BLOCKED",
	Incomplete: "INCOMPLETE",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(b []byte) error {
	for k, v := range outcomeNames {
		if v == string(b) {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", b)
}

// Verdict is the result of replaying a proposal.
//
// For Blocked, Cell is where the traveller stood when the move was refused
// and StepIndex/SubStepIndex locate that move. For Incomplete, Cell is where
// the proposal ended. For Success, Cell is the goal.
type Verdict struct {
	Outcome      Outcome `json:"outcome" bson:"outcome"`
	Cell         Cell    `json:"cell" bson:"cell"`
	StepIndex    int     `json:"step_index" bson:"stepIndex"`
	SubStepIndex int     `json:"sub_step_index" bson:"subStepIndex"`
}

// Accepted reports whether the proposal reached the goal.
func (v Verdict) Accepted() bool {
	return v.Outcome == Success
}

func (v Verdict) String() string {
	switch v.Outcome {
	case Blocked:
		return fmt.Sprintf("BLOCKED_AT(%s, %d, %d)", v.Cell, v.StepIndex, v.SubStepIndex)
	case Incomplete:
		return fmt.Sprintf("INCOMPLETE(%s)", v.Cell)
	default:
		return v.Outcome.String()
	}
}

// SuccessAt builds a successful verdict ending on goal.
func SuccessAt(goal Cell) Verdict {
	return Verdict{Outcome: Success, Cell: goal}
}

// BlockedAt builds a verdict for a refused unit move.
func BlockedAt(c Cell, stepIndex, subStepIndex int) Verdict {
	return Verdict{Outcome: Blocked, Cell: c, StepIndex: stepIndex, SubStepIndex: subStepIndex}
}

// IncompleteAt builds a verdict for a proposal that stopped short of the goal.
func IncompleteAt(c Cell) Verdict {
	return Verdict{Outcome: Incomplete, Cell: c}
}

// Validate replays steps from start, one unit move at a time, through mover.
//
// The first refused move ends the replay with a Blocked verdict; later steps
// are never evaluated. Once every step has been played the verdict is Success
// if the traveller stands on goal and Incomplete otherwise. A step whose
// count is zero or negative plays no moves.
//
// An error is returned only when the inputs are unusable (start or goal
// outside the grid, unknown direction) or when mover breaks its contract by
// reporting MoveOK for a cell that is not the adjacent cell inside the grid.
func Validate(steps Steps, start, goal Cell, grid Grid, mover Mover) (Verdict, error) {
	if !grid.Contains(start) {
		return Verdict{}, fmt.Errorf("start %s: %w", start, ErrCellOutOfBounds)
	}
	if !grid.Contains(goal) {
		return Verdict{}, fmt.Errorf("goal %s: %w", goal, ErrCellOutOfBounds)
	}

	current := start
	for i, step := range steps {
		dir, err := Lookup(step.Direction)
		if err != nil {
			return Verdict{}, fmt.Errorf("step %d: %w", i, err)
		}

		for s := 0; s < step.Count; s++ {
			next, outcome := mover.Move(current, dir.ID)
			if outcome != MoveOK {
				return BlockedAt(current, i, s), nil
			}
			if next != dir.Apply(current) || !grid.Contains(next) {
				return Verdict{}, fmt.Errorf("%w: %s %s gave %s at step %d, move %d",
					ErrContractViolation, current, dir.ID, next, i, s)
			}
			current = next
		}
	}

	if current == goal {
		return SuccessAt(goal), nil
	}
	return IncompleteAt(current), nil
}
