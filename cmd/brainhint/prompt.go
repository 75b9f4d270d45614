package main

import (
	"bufio"
	"context"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/use-agent/brainhint/render"
	"github.com/use-agent/brainhint/solver"
)

func newPromptCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Read level numbers from stdin, one per line",
		Long: `prompt reads level numbers line by line and prints each answer as it
arrives. A new level does not wait for the previous one, so answers can
appear out of order. Type "quit" or send EOF to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := opts.newSolver()
			display := render.NewDisplay(cmd.OutOrStdout(), opts.plain)

			var wg sync.WaitGroup
			defer wg.Wait()

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				level := strings.TrimSpace(scanner.Text())
				if level == "quit" || level == "exit" {
					break
				}
				if err := solver.ValidateLevel(level); err != nil {
					display.Notice("Please enter a level number.")
					continue
				}

				display.Loading(level)
				wg.Add(1)
				go func(level string) {
					defer wg.Done()
					ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
					defer cancel()
					// Level and target template were validated, so FetchSolution cannot fail.
					out, _ := s.FetchSolution(ctx, level)
					display.Show(out)
				}(level)
			}
			return scanner.Err()
		},
	}
}
