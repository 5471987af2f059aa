package route

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGrid     = errors.New("grid dimensions must be positive")
	ErrCellOutOfBounds = errors.New("cell is out of the grid")
)

// Cell is a (row, col) coordinate in the grid.
type Cell struct {
	Row int `json:"row" bson:"row" yaml:"row" toml:"row"`
	Col int `json:"col" bson:"col" yaml:"col" toml:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid holds the fixed dimensions of a maze.
type Grid struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// NewGrid validates and returns a grid of the given size.
func NewGrid(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Corner returns the bottom-right cell.
func (g Grid) Corner() Cell {
	return Cell{Row: g.Rows - 1, Col: g.Cols - 1}
}

// MoveOutcome is the result of asking a maze for one unit move.
type MoveOutcome int

const (
	MoveOK MoveOutcome = iota
	MoveBlocked
)

func (o MoveOutcome) String() string {
	if o == MoveOK {
		return "OK"
	}
	return "BLOCKED"
}

// Mover is the single unit-move capability a maze offers.
//
// When the outcome is MoveOK the returned cell is inside the grid and one
// unit away from the input cell in the requested direction. When the outcome
// is MoveBlocked the returned cell carries no meaning. Implementations must
// be deterministic and free of side effects.
type Mover interface {
	Move(from Cell, dir DirectionID) (Cell, MoveOutcome)
}

// MoverFunc adapts a plain function to Mover.
type MoverFunc func(from Cell, dir DirectionID) (Cell, MoveOutcome)

// Move implements Mover.
func (f MoverFunc) Move(from Cell, dir DirectionID) (Cell, MoveOutcome) {
	return f(from, dir)
}
