/*
Package maze provides rectangular mazes whose cells carry a wall on each side.

Mazes are either generated with Wilson's algorithm, which yields a perfect maze
(exactly one path between any two cells), or built open and shaped by adding
walls. A Maze implements route.Mover: a unit move succeeds when the target
cell is inside the grid and the wall between the two cells is down.

A Maze is safe for concurrent reads once it is no longer being edited.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/beka-birhanu/icare/route"
)

const (
	maxMazeDimension = 20
)

var (
	ErrInvalidMazeDimension = errors.New("invalid maze dimensions")
	ErrInvalidWall          = errors.New("wall does not separate two cells of the maze")
)

// Maze is a grid of cells with walls.
type Maze struct {
	rows int      // Number of rows.
	cols int      // Number of columns.
	grid [][]Cell // grid[row][col].
}

// Option configures maze generation.
type Option func(*options)

type options struct {
	rnd *rand.Rand
}

// WithRand makes generation use r, so a fixed seed yields a fixed layout.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rnd = r
	}
}

// WithSeed is WithRand with a new source seeded by seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// New initializes a maze of the given dimensions and carves it with Wilson's
// algorithm.
func New(rows, cols int, opts ...Option) (*Maze, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m, err := newFilled(rows, cols, true)
	if err != nil {
		return nil, err
	}
	m.generate(o.rnd)
	return m, nil
}

// NewOpen returns a maze with only its outer boundary walled.
func NewOpen(rows, cols int) (*Maze, error) {
	m, err := newFilled(rows, cols, false)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		m.grid[r][0].WestWall = true
		m.grid[r][cols-1].EastWall = true
	}
	for c := 0; c < cols; c++ {
		m.grid[0][c].NorthWall = true
		m.grid[rows-1][c].SouthWall = true
	}
	return m, nil
}

func newFilled(rows, cols int, closed bool) (*Maze, error) {
	if min(rows, cols) <= 0 || max(rows, cols) > maxMazeDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidMazeDimension, rows, cols)
	}

	grid := make([][]Cell, rows)
	for i := range grid {
		grid[i] = make([]Cell, cols)
		if closed {
			for j := range grid[i] {
				grid[i][j] = closedCell()
			}
		}
	}
	return &Maze{rows: rows, cols: cols, grid: grid}, nil
}

// Rows returns the number of rows.
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Maze) Cols() int {
	return m.cols
}

// Grid returns the maze dimensions.
func (m *Maze) Grid() route.Grid {
	return route.Grid{Rows: m.rows, Cols: m.cols}
}

// At returns a copy of the cell at c.
func (m *Maze) At(c route.Cell) (Cell, error) {
	if !m.Grid().Contains(c) {
		return Cell{}, fmt.Errorf("%s: %w", c, route.ErrCellOutOfBounds)
	}
	return m.grid[c.Row][c.Col], nil
}

// AddWall closes the wall between c and its neighbour towards dir.
func (m *Maze) AddWall(c route.Cell, dir route.DirectionID) error {
	return m.setWall(c, dir, true)
}

// RemoveWall opens the wall between c and its neighbour towards dir.
func (m *Maze) RemoveWall(c route.Cell, dir route.DirectionID) error {
	return m.setWall(c, dir, false)
}

func (m *Maze) setWall(c route.Cell, dir route.DirectionID, closed bool) error {
	d, err := route.Lookup(dir)
	if err != nil {
		return err
	}
	to := d.Apply(c)
	if !m.Grid().Contains(c) || !m.Grid().Contains(to) {
		return fmt.Errorf("%w: %s %s", ErrInvalidWall, c, dir)
	}
	m.grid[c.Row][c.Col].setWall(dir, closed)
	m.grid[to.Row][to.Col].setWall(dir.Opposite(), closed)
	return nil
}

// CanMove reports whether a unit move from c towards dir is allowed.
func (m *Maze) CanMove(c route.Cell, dir route.DirectionID) bool {
	d, err := route.Lookup(dir)
	if err != nil {
		return false
	}
	to := d.Apply(c)
	if !m.Grid().Contains(c) || !m.Grid().Contains(to) {
		return false
	}
	return !m.grid[c.Row][c.Col].HasWall(dir) && !m.grid[to.Row][to.Col].HasWall(dir.Opposite())
}

// Move implements route.Mover.
func (m *Maze) Move(from route.Cell, dir route.DirectionID) (route.Cell, route.MoveOutcome) {
	if !m.CanMove(from, dir) {
		return from, route.MoveBlocked
	}
	d, _ := route.Lookup(dir)
	return d.Apply(from), route.MoveOK
}

// neighbors lists the in-bound moves from pos, ignoring walls.
func (m *Maze) neighbors(pos route.Cell) []move {
	var result []move
	for _, d := range route.Directions() {
		to := d.Apply(pos)
		if m.Grid().Contains(to) {
			result = append(result, move{from: pos, to: to, dir: d.ID})
		}
	}
	return result
}

type move struct {
	from route.Cell
	to   route.Cell
	dir  route.DirectionID
}

// randomWalk performs a loop-erased random walk from an unvisited cell until
// it meets the visited set. Only the last exit taken from each cell is kept,
// which erases the loops.
func (m *Maze) randomWalk(rnd *rand.Rand, visited map[route.Cell]struct{}) (route.Cell, map[route.Cell]move) {
	start := m.randomUnvisited(rnd, visited)
	exits := make(map[route.Cell]move)
	cell := start

	for {
		neighbors := m.neighbors(cell)
		next := neighbors[rnd.Intn(len(neighbors))]
		exits[cell] = next
		if _, included := visited[next.to]; included {
			break
		}
		cell = next.to
	}

	return start, exits
}

func (m *Maze) randomUnvisited(rnd *rand.Rand, visited map[route.Cell]struct{}) route.Cell {
	for {
		pos := route.Cell{Row: rnd.Intn(m.rows), Col: rnd.Intn(m.cols)}
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// generate carves a perfect maze using Wilson's algorithm.
func (m *Maze) generate(rnd *rand.Rand) {
	visited := make(map[route.Cell]struct{})
	visited[route.Cell{Row: rnd.Intn(m.rows), Col: rnd.Intn(m.cols)}] = struct{}{}

	for len(visited) < m.rows*m.cols {
		start, exits := m.randomWalk(rnd, visited)
		for cell := start; ; {
			if _, included := visited[cell]; included {
				break
			}
			exit := exits[cell]
			_ = m.RemoveWall(exit.from, exit.dir)
			visited[cell] = struct{}{}
			cell = exit.to
		}
	}
}

// String provides an ASCII representation of the maze.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for col := 0; col < m.cols; col++ {
		if m.grid[0][col].NorthWall {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for row := 0; row < m.rows; row++ {
		if m.grid[row][0].WestWall {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for col := 0; col < m.cols; col++ {
			if m.grid[row][col].EastWall {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for col := 0; col < m.cols; col++ {
			if m.grid[row][col].SouthWall {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
