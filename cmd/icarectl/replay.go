package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/icare/route"
	"github.com/beka-birhanu/icare/scenario"
	"github.com/spf13/cobra"
)

var errRejected = errors.New("path rejected")

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Validate the proposal stored in a scenario file",
	Long: `Loads a YAML or TOML scenario, builds its maze and replays the steps unit move by unit move.
Use --steps to try another proposal on the same maze, e.g. --steps "EAST×4 SOUTH×4".`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		steps, _ := cmd.Flags().GetString("steps")
		quiet, _ := cmd.Flags().GetBool("quiet")
		if err := runReplay(cmd.OutOrStdout(), args[0], steps, quiet); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	replayCmd.Flags().String("steps", "", "Proposal text overriding the scenario steps")
	replayCmd.Flags().BoolP("quiet", "q", false, "Print only the verdict")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(w io.Writer, path, stepsText string, quiet bool) error {
	s, err := scenario.LoadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if stepsText != "" {
		if s.Steps, err = route.ParseSteps(stepsText); err != nil {
			return err
		}
	}

	v, m, err := s.Run()
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprint(w, m)
		fmt.Fprintf(w, "start %s goal %s\n", s.Start, s.Goal)
		fmt.Fprintf(w, "proposal [%s]\n", s.Steps)
	}
	fmt.Fprintln(w, v)

	if !v.Accepted() {
		return errRejected
	}
	return nil
}
