package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/icare/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallScenario = `
rows: 5
cols: 5
walls:
  - {row: 0, col: 0, direction: SOUTH}
steps:
  - {direction: EAST, count: 4}
  - {direction: SOUTH, count: 4}
`

func writeScenario(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestRunReplay(t *testing.T) {
	path := writeScenario(t, wallScenario)

	t.Run("Accepted", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runReplay(&out, path, "", false))
		assert.Contains(t, out.String(), "+---+")
		assert.Contains(t, out.String(), "proposal [EAST×4 SOUTH×4]")
		assert.Contains(t, out.String(), "SUCCESS\n")
	})

	t.Run("Steps override", func(t *testing.T) {
		var out bytes.Buffer
		err := runReplay(&out, path, "SOUTH×1", true)
		assert.ErrorIs(t, err, errRejected)
		assert.Equal(t, "BLOCKED_AT((0,0), 0, 0)\n", out.String())
	})

	t.Run("Malformed override", func(t *testing.T) {
		var out bytes.Buffer
		assert.Error(t, runReplay(&out, path, "SOUTH", true))
		assert.Empty(t, out.String())
	})

	t.Run("Missing file", func(t *testing.T) {
		var out bytes.Buffer
		assert.Error(t, runReplay(&out, filepath.Join(t.TempDir(), "nope.yaml"), "", false))
	})
}

func TestRunMaze(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runMaze(&out, 3, 4, 5))

	m, err := maze.New(3, 4, maze.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, m.String(), out.String())

	assert.ErrorIs(t, runMaze(&out, 0, 4, 5), maze.ErrInvalidMazeDimension)
}
