package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the relay is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			hr, err := opts.newClient().Health(ctx)
			if err != nil {
				return fmt.Errorf("relay at %s: %w", opts.relayURL, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", hr.Status, hr.Message, hr.Timestamp)
			return nil
		},
	}
}
