package main

import (
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/icare/maze"
	"github.com/spf13/cobra"
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Generate a maze and print it",
	Run: func(cmd *cobra.Command, args []string) {
		rows, _ := cmd.Flags().GetInt("rows")
		cols, _ := cmd.Flags().GetInt("cols")
		seed, _ := cmd.Flags().GetInt64("seed")
		if err := runMaze(cmd.OutOrStdout(), rows, cols, seed); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	mazeCmd.Flags().Int("rows", 5, "Number of rows")
	mazeCmd.Flags().Int("cols", 5, "Number of columns")
	mazeCmd.Flags().Int64("seed", 1, "Generation seed, 0 prints an open grid")
	rootCmd.AddCommand(mazeCmd)
}

func runMaze(w io.Writer, rows, cols int, seed int64) error {
	var (
		m   *maze.Maze
		err error
	)
	if seed == 0 {
		m, err = maze.NewOpen(rows, cols)
	} else {
		m, err = maze.New(rows, cols, maze.WithSeed(seed))
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, m)
	return err
}
