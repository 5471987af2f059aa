package maze

import (
	"testing"

	"github.com/beka-birhanu/icare/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable counts the cells reachable from the origin through open walls.
func reachable(m *Maze) int {
	seen := map[route.Cell]bool{{}: true}
	stack := []route.Cell{{}}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range route.Directions() {
			next, outcome := m.Move(c, d.ID)
			if outcome == route.MoveOK && !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return len(seen)
}

// openWalls counts the open shared walls.
func openWalls(m *Maze) int {
	n := 0
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if m.CanMove(route.Cell{Row: r, Col: c}, route.East) {
				n++
			}
			if m.CanMove(route.Cell{Row: r, Col: c}, route.South) {
				n++
			}
		}
	}
	return n
}

func TestNew(t *testing.T) {
	t.Run("Rejects bad dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, -1}, {21, 3}} {
			_, err := New(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidMazeDimension)
		}
	})

	t.Run("Generates a perfect maze", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			m, err := New(5, 7, WithSeed(seed))
			require.NoError(t, err)
			assert.Equal(t, 35, reachable(m), "seed %d: every cell must be reachable", seed)
			assert.Equal(t, 34, openWalls(m), "seed %d: a spanning tree has cells-1 passages", seed)
		}
	})

	t.Run("Same seed gives the same layout", func(t *testing.T) {
		a, err := New(6, 6, WithSeed(42))
		require.NoError(t, err)
		b, err := New(6, 6, WithSeed(42))
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("Single cell", func(t *testing.T) {
		m, err := New(1, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, reachable(m))
	})
}

func TestMove(t *testing.T) {
	m, err := NewOpen(3, 3)
	require.NoError(t, err)

	t.Run("Open move advances one cell", func(t *testing.T) {
		next, outcome := m.Move(route.Cell{Row: 1, Col: 1}, route.North)
		assert.Equal(t, route.MoveOK, outcome)
		assert.Equal(t, route.Cell{Row: 0, Col: 1}, next)
	})

	t.Run("Boundary blocks", func(t *testing.T) {
		_, outcome := m.Move(route.Cell{}, route.West)
		assert.Equal(t, route.MoveBlocked, outcome)
		_, outcome = m.Move(route.Cell{Row: 2, Col: 2}, route.South)
		assert.Equal(t, route.MoveBlocked, outcome)
	})

	t.Run("Walls block both ways", func(t *testing.T) {
		require.NoError(t, m.AddWall(route.Cell{Row: 1, Col: 1}, route.East))
		_, outcome := m.Move(route.Cell{Row: 1, Col: 1}, route.East)
		assert.Equal(t, route.MoveBlocked, outcome)
		_, outcome = m.Move(route.Cell{Row: 1, Col: 2}, route.West)
		assert.Equal(t, route.MoveBlocked, outcome)

		require.NoError(t, m.RemoveWall(route.Cell{Row: 1, Col: 2}, route.West))
		_, outcome = m.Move(route.Cell{Row: 1, Col: 1}, route.East)
		assert.Equal(t, route.MoveOK, outcome)
	})

	t.Run("Unknown direction or outside cell blocks", func(t *testing.T) {
		_, outcome := m.Move(route.Cell{}, "UP")
		assert.Equal(t, route.MoveBlocked, outcome)
		_, outcome = m.Move(route.Cell{Row: 7, Col: 7}, route.North)
		assert.Equal(t, route.MoveBlocked, outcome)
	})

	t.Run("Boundary walls cannot be edited", func(t *testing.T) {
		assert.ErrorIs(t, m.RemoveWall(route.Cell{}, route.North), ErrInvalidWall)
		assert.ErrorIs(t, m.AddWall(route.Cell{}, "UP"), route.ErrUnknownDirection)
	})
}

func TestString(t *testing.T) {
	m, err := NewOpen(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.AddWall(route.Cell{}, route.South))

	want := "" +
		"+---+---+\n" +
		"|       |\n" +
		"+---+   +\n" +
		"|       |\n" +
		"+---+---+\n"
	assert.Equal(t, want, m.String())
}
