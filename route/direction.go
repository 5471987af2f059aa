/*
Package route models a path proposal through a grid maze and replays it
against the maze's movement rules.

A proposal is an ordered list of steps, each a direction with a repeat count.
The validator walks the proposal one unit move at a time, so internal walls
that sit between the start and the end of a step are never skipped.
*/
package route

import (
	"errors"
	"fmt"
	"strings"
)

// DirectionID is the stable identifier of a movement direction.
type DirectionID string

// The four movement directions.
const (
	North DirectionID = "NORTH"
	South DirectionID = "SOUTH"
	West  DirectionID = "WEST"
	East  DirectionID = "EAST"
)

var (
	ErrUnknownDirection = errors.New("unknown direction")
)

// Direction describes the effect of one unit move on a cell.
type Direction struct {
	ID       DirectionID `json:"id"`        // Stable identifier.
	RowDelta int         `json:"row_delta"` // Row offset of one unit move.
	ColDelta int         `json:"col_delta"` // Column offset of one unit move.
	Label    string      `json:"label"`     // Display label.
}

var (
	catalog = map[DirectionID]Direction{
		North: {ID: North, RowDelta: -1, ColDelta: 0, Label: "up"},
		South: {ID: South, RowDelta: 1, ColDelta: 0, Label: "down"},
		West:  {ID: West, RowDelta: 0, ColDelta: -1, Label: "left"},
		East:  {ID: East, RowDelta: 0, ColDelta: 1, Label: "right"},
	}

	catalogOrder = []DirectionID{North, South, West, East}
)

// Directions returns the four directions in catalog order.
func Directions() []Direction {
	dirs := make([]Direction, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		dirs = append(dirs, catalog[id])
	}
	return dirs
}

// Lookup returns the direction registered under id.
func Lookup(id DirectionID) (Direction, error) {
	d, ok := catalog[id]
	if !ok {
		return Direction{}, fmt.Errorf("%w: %q", ErrUnknownDirection, id)
	}
	return d, nil
}

// ParseDirection accepts a direction identifier in any letter case.
func ParseDirection(s string) (DirectionID, error) {
	id := DirectionID(strings.ToUpper(strings.TrimSpace(s)))
	if _, err := Lookup(id); err != nil {
		return "", err
	}
	return id, nil
}

// Valid reports whether id names one of the four directions.
func (id DirectionID) Valid() bool {
	_, ok := catalog[id]
	return ok
}

// Opposite returns the direction that undoes a unit move in id.
func (id DirectionID) Opposite() DirectionID {
	switch id {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	case East:
		return West
	default:
		return ""
	}
}

// Apply returns the cell reached from c by one unit move in d.
func (d Direction) Apply(c Cell) Cell {
	return Cell{Row: c.Row + d.RowDelta, Col: c.Col + d.ColDelta}
}
