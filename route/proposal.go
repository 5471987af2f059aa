package route

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidCount    = errors.New("step count must be a positive integer")
	ErrIndexOutOfRange = errors.New("step index out of range")
	ErrMalformedSteps  = errors.New("malformed serialized steps")
)

// Step is one instruction: move Count unit cells towards Direction.
type Step struct {
	Direction DirectionID `json:"direction" bson:"direction" yaml:"direction" toml:"direction"`
	Count     int         `json:"count" bson:"count" yaml:"count" toml:"count"`
}

// NewStep parses countText and builds a step.
func NewStep(dir DirectionID, countText string) (Step, error) {
	if !dir.Valid() {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownDirection, dir)
	}
	count, err := ParseCount(countText)
	if err != nil {
		return Step{}, err
	}
	return Step{Direction: dir, Count: count}, nil
}

// ParseCount parses user supplied text as a positive integer.
func ParseCount(text string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || count <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, text)
	}
	return count, nil
}

func (s Step) String() string {
	return fmt.Sprintf("%s×%d", s.Direction, s.Count)
}

// Steps is an ordered, read-only snapshot of a proposal.
type Steps []Step

// UnitMoves returns the total number of unit moves in the snapshot.
func (ss Steps) UnitMoves() int {
	total := 0
	for _, s := range ss {
		total += s.Count
	}
	return total
}

// String renders the steps in execution order, e.g. "EAST×4 SOUTH×4".
func (ss Steps) String() string {
	parts := make([]string, 0, len(ss))
	for _, s := range ss {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " ")
}

// ParseSteps reads the form produced by Steps.String.
func ParseSteps(text string) (Steps, error) {
	fields := strings.Fields(text)
	steps := make(Steps, 0, len(fields))
	for _, f := range fields {
		dir, count, ok := strings.Cut(f, "×")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedSteps, f)
		}
		step, err := NewStep(DirectionID(dir), count)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Proposal is the mutable list of steps a player is authoring.
// The zero value is an empty proposal ready to use.
type Proposal struct {
	steps []Step
}

// NewProposal restores a proposal from previously taken steps.
// Every step is checked the same way AppendStep checks it.
func NewProposal(steps Steps) (*Proposal, error) {
	p := &Proposal{steps: make([]Step, 0, len(steps))}
	for i, s := range steps {
		if !s.Direction.Valid() {
			return nil, fmt.Errorf("step %d: %w: %q", i, ErrUnknownDirection, s.Direction)
		}
		if s.Count <= 0 {
			return nil, fmt.Errorf("step %d: %w: %d", i, ErrInvalidCount, s.Count)
		}
		p.steps = append(p.steps, s)
	}
	return p, nil
}

// Len returns the number of steps.
func (p *Proposal) Len() int {
	return len(p.steps)
}

// AppendStep adds a step at the end. The proposal is left untouched on error.
func (p *Proposal) AppendStep(dir DirectionID, countText string) error {
	step, err := NewStep(dir, countText)
	if err != nil {
		return err
	}
	p.steps = append(p.steps, step)
	return nil
}

// UpdateCount replaces the count of the step at index.
func (p *Proposal) UpdateCount(index int, countText string) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	count, err := ParseCount(countText)
	if err != nil {
		return err
	}
	p.steps[index].Count = count
	return nil
}

// RemoveStep deletes the step at index, keeping the order of the others.
func (p *Proposal) RemoveStep(index int) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.steps = append(p.steps[:index], p.steps[index+1:]...)
	return nil
}

// ReorderStep moves the step at from so that it ends up at position to.
// All other steps keep their relative order.
func (p *Proposal) ReorderStep(from, to int) error {
	if err := p.checkIndex(from); err != nil {
		return err
	}
	if err := p.checkIndex(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	moved := p.steps[from]
	if from < to {
		copy(p.steps[from:to], p.steps[from+1:to+1])
	} else {
		copy(p.steps[to+1:from+1], p.steps[to:from])
	}
	p.steps[to] = moved
	return nil
}

// Clear removes every step.
func (p *Proposal) Clear() {
	p.steps = nil
}

// Snapshot returns a copy of the steps that later edits do not affect.
func (p *Proposal) Snapshot() Steps {
	snap := make(Steps, len(p.steps))
	copy(snap, p.steps)
	return snap
}

func (p *Proposal) checkIndex(index int) error {
	if index < 0 || index >= len(p.steps) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(p.steps))
	}
	return nil
}
