package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProposal(t *testing.T, steps ...Step) *Proposal {
	t.Helper()
	p, err := NewProposal(steps)
	require.NoError(t, err)
	return p
}

func TestDirectionCatalog(t *testing.T) {
	t.Run("Exactly four axis aligned directions", func(t *testing.T) {
		dirs := Directions()
		assert.Len(t, dirs, 4)

		seen := map[DirectionID]bool{}
		for _, d := range dirs {
			assert.False(t, seen[d.ID], "duplicate direction %s", d.ID)
			seen[d.ID] = true
			assert.Equal(t, 1, abs(d.RowDelta)+abs(d.ColDelta), "direction %s is not a unit move", d.ID)
			assert.NotEmpty(t, d.Label)
		}
	})

	t.Run("Lookup by id", func(t *testing.T) {
		d, err := Lookup(South)
		assert.NoError(t, err)
		assert.Equal(t, Cell{Row: 1, Col: 0}, d.Apply(Cell{}))

		_, err = Lookup("UP")
		assert.ErrorIs(t, err, ErrUnknownDirection)
	})

	t.Run("Parse ignores case and spaces", func(t *testing.T) {
		id, err := ParseDirection(" east ")
		assert.NoError(t, err)
		assert.Equal(t, East, id)

		_, err = ParseDirection("diagonal")
		assert.ErrorIs(t, err, ErrUnknownDirection)
	})

	t.Run("Opposite undoes the move", func(t *testing.T) {
		for _, d := range Directions() {
			back, err := Lookup(d.ID.Opposite())
			assert.NoError(t, err)
			assert.Equal(t, Cell{Row: 2, Col: 2}, back.Apply(d.Apply(Cell{Row: 2, Col: 2})))
		}
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestProposal(t *testing.T) {
	t.Run("Append parses the count", func(t *testing.T) {
		var p Proposal
		assert.NoError(t, p.AppendStep(East, "4"))
		assert.NoError(t, p.AppendStep(South, " 2 "))
		assert.Equal(t, Steps{{East, 4}, {South, 2}}, p.Snapshot())
	})

	t.Run("Append rejects bad counts and leaves the proposal unchanged", func(t *testing.T) {
		p := buildProposal(t, Step{North, 1})
		for _, text := range []string{"abc", "", "0", "-3", "1.5"} {
			err := p.AppendStep(East, text)
			assert.ErrorIs(t, err, ErrInvalidCount, "count %q", text)
			assert.Equal(t, 1, p.Len())
		}
	})

	t.Run("Append rejects unknown direction", func(t *testing.T) {
		var p Proposal
		assert.ErrorIs(t, p.AppendStep("UP", "1"), ErrUnknownDirection)
		assert.Equal(t, 0, p.Len())
	})

	t.Run("Remove keeps the order of the rest", func(t *testing.T) {
		p := buildProposal(t, Step{North, 1}, Step{East, 2}, Step{South, 3})
		assert.NoError(t, p.RemoveStep(1))
		assert.Equal(t, Steps{{North, 1}, {South, 3}}, p.Snapshot())

		assert.ErrorIs(t, p.RemoveStep(2), ErrIndexOutOfRange)
		assert.ErrorIs(t, p.RemoveStep(-1), ErrIndexOutOfRange)
		assert.Equal(t, 2, p.Len())
	})

	t.Run("Reorder is stable", func(t *testing.T) {
		a, b, c, d := Step{North, 1}, Step{East, 2}, Step{South, 3}, Step{West, 4}

		p := buildProposal(t, a, b, c, d)
		assert.NoError(t, p.ReorderStep(0, 2))
		assert.Equal(t, Steps{b, c, a, d}, p.Snapshot())

		p = buildProposal(t, a, b, c, d)
		assert.NoError(t, p.ReorderStep(3, 1))
		assert.Equal(t, Steps{a, d, b, c}, p.Snapshot())

		p = buildProposal(t, a, b)
		assert.NoError(t, p.ReorderStep(1, 1))
		assert.Equal(t, Steps{a, b}, p.Snapshot())

		assert.ErrorIs(t, p.ReorderStep(0, 5), ErrIndexOutOfRange)
		assert.ErrorIs(t, p.ReorderStep(-1, 0), ErrIndexOutOfRange)
		assert.Equal(t, Steps{a, b}, p.Snapshot())
	})

	t.Run("Update count", func(t *testing.T) {
		p := buildProposal(t, Step{North, 1})
		assert.NoError(t, p.UpdateCount(0, "7"))
		assert.ErrorIs(t, p.UpdateCount(0, "x"), ErrInvalidCount)
		assert.ErrorIs(t, p.UpdateCount(1, "2"), ErrIndexOutOfRange)
		assert.Equal(t, Steps{{North, 7}}, p.Snapshot())
	})

	t.Run("Clear is idempotent", func(t *testing.T) {
		p := buildProposal(t, Step{North, 1})
		p.Clear()
		p.Clear()
		assert.Equal(t, 0, p.Len())
		assert.Empty(t, p.Snapshot())
	})

	t.Run("Snapshot is isolated from later edits", func(t *testing.T) {
		p := buildProposal(t, Step{North, 1}, Step{East, 2})
		snap := p.Snapshot()

		assert.NoError(t, p.UpdateCount(0, "9"))
		assert.NoError(t, p.RemoveStep(1))
		assert.NoError(t, p.AppendStep(West, "3"))

		assert.Equal(t, Steps{{North, 1}, {East, 2}}, snap)
	})

	t.Run("Restore rejects malformed steps", func(t *testing.T) {
		_, err := NewProposal(Steps{{North, 0}})
		assert.ErrorIs(t, err, ErrInvalidCount)

		_, err = NewProposal(Steps{{"NW", 1}})
		assert.ErrorIs(t, err, ErrUnknownDirection)
	})
}

func TestStepsText(t *testing.T) {
	steps := Steps{{East, 4}, {South, 1}}
	assert.Equal(t, "EAST×4 SOUTH×1", steps.String())
	assert.Equal(t, 5, steps.UnitMoves())

	parsed, err := ParseSteps(steps.String())
	assert.NoError(t, err)
	assert.Equal(t, steps, parsed)

	_, err = ParseSteps("EAST4")
	assert.ErrorIs(t, err, ErrMalformedSteps)

	_, err = ParseSteps("EAST×zero")
	assert.ErrorIs(t, err, ErrInvalidCount)
}
