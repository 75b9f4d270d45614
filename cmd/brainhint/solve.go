package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/use-agent/brainhint/render"
	"github.com/use-agent/brainhint/solver"
)

// errEnterLevel is shown when the level argument is blank.
var errEnterLevel = errors.New("please enter a level number")

func newSolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "solve <level>",
		Short:   "Print the answer for a level",
		Example: "  brainhint solve 42",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := args[0]
			if err := solver.ValidateLevel(level); err != nil {
				return errEnterLevel
			}

			display := render.NewDisplay(cmd.OutOrStdout(), opts.plain)
			display.Loading(level)

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			out, err := opts.newSolver().FetchSolution(ctx, level)
			if err != nil {
				return err
			}
			display.Show(out)

			if out.Kind != solver.KindFound {
				return errNoAnswer
			}
			return nil
		},
	}
}
