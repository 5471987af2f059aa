package maze

import "github.com/beka-birhanu/icare/route"

// Cell represents a single cell in a maze grid.
// Each side carries its own wall flag; a shared wall is open only when both
// neighbouring cells have it open.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
}

func closedCell() Cell {
	return Cell{NorthWall: true, SouthWall: true, EastWall: true, WestWall: true}
}

// HasWall reports whether the side of the cell facing dir is walled.
func (c *Cell) HasWall(dir route.DirectionID) bool {
	switch dir {
	case route.North:
		return c.NorthWall
	case route.South:
		return c.SouthWall
	case route.East:
		return c.EastWall
	case route.West:
		return c.WestWall
	default:
		return true
	}
}

// setWall sets the side of the cell facing dir.
func (c *Cell) setWall(dir route.DirectionID, closed bool) {
	switch dir {
	case route.North:
		c.NorthWall = closed
	case route.South:
		c.SouthWall = closed
	case route.East:
		c.EastWall = closed
	case route.West:
		c.WestWall = closed
	}
}
