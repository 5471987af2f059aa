// Package scenario loads replayable proposal files.
//
// A scenario pins down everything a verdict depends on: the maze (its size,
// generation seed and extra walls), the start and goal cells, and the steps
// in execution order. Files are YAML, or TOML when named *.toml.
//
//	rows: 5
//	cols: 5
//	seed: 0          # 0 builds an open grid
//	start: {row: 0, col: 0}
//	goal: {row: 4, col: 4}
//	walls:
//	  - {row: 0, col: 0, direction: SOUTH}
//	steps:
//	  - {direction: EAST, count: 4}
//	  - {direction: SOUTH, count: 4}
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/beka-birhanu/icare/maze"
	"github.com/beka-birhanu/icare/route"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoGrid       = errors.New("scenario must set rows and cols")
	ErrUnknownField = errors.New("unknown scenario field")
)

// Wall closes the side of a cell facing Direction.
type Wall struct {
	Row       int               `yaml:"row" toml:"row"`
	Col       int               `yaml:"col" toml:"col"`
	Direction route.DirectionID `yaml:"direction" toml:"direction"`
}

// Scenario is a maze plus a proposal to replay on it.
type Scenario struct {
	Rows  int         `yaml:"rows" toml:"rows"`
	Cols  int         `yaml:"cols" toml:"cols"`
	Seed  int64       `yaml:"seed" toml:"seed"`
	Start *route.Cell `yaml:"start,omitempty" toml:"start,omitempty"`
	Goal  *route.Cell `yaml:"goal,omitempty" toml:"goal,omitempty"`
	Walls []Wall      `yaml:"walls,omitempty" toml:"walls,omitempty"`
	Steps route.Steps `yaml:"steps" toml:"steps"`
}

// LoadFile reads a scenario file, choosing the format by extension.
func LoadFile(path string) (*Scenario, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var s Scenario
		meta, err := toml.DecodeFile(path, &s)
		if err != nil {
			return nil, fmt.Errorf("decoding scenario: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, undecoded[0])
		}
		return s.complete()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a YAML scenario and fills in the default start (top-left) and
// goal (bottom-right).
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	return s.complete()
}

func (s *Scenario) complete() (*Scenario, error) {
	if s.Rows <= 0 || s.Cols <= 0 {
		return nil, ErrNoGrid
	}
	if s.Start == nil {
		s.Start = &route.Cell{}
	}
	if s.Goal == nil {
		s.Goal = &route.Cell{Row: s.Rows - 1, Col: s.Cols - 1}
	}
	if _, err := route.NewProposal(s.Steps); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode writes s as YAML.
func (s *Scenario) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// Maze builds the scenario's maze.
func (s *Scenario) Maze() (*maze.Maze, error) {
	var (
		m   *maze.Maze
		err error
	)
	if s.Seed == 0 {
		m, err = maze.NewOpen(s.Rows, s.Cols)
	} else {
		m, err = maze.New(s.Rows, s.Cols, maze.WithSeed(s.Seed))
	}
	if err != nil {
		return nil, err
	}

	for _, w := range s.Walls {
		if err := m.AddWall(route.Cell{Row: w.Row, Col: w.Col}, w.Direction); err != nil {
			return nil, fmt.Errorf("wall %+v: %w", w, err)
		}
	}
	return m, nil
}

// Run replays the steps and returns the verdict with the maze it used.
func (s *Scenario) Run() (route.Verdict, *maze.Maze, error) {
	m, err := s.Maze()
	if err != nil {
		return route.Verdict{}, nil, err
	}
	v, err := route.Validate(s.Steps, *s.Start, *s.Goal, m.Grid(), m)
	return v, m, err
}
