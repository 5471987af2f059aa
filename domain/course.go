package domain

import "github.com/beka-birhanu/icare/route"

// Course describes the maze every proposal is judged against.
type Course struct {
	Grid   route.Grid `json:"grid"`
	Start  route.Cell `json:"start"`
	Goal   route.Cell `json:"goal"`
	Layout string     `json:"layout"` // ASCII drawing of the maze.
}
