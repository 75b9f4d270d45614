package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/use-agent/brainhint/solver"
)

// errNoAnswer marks a run that completed but showed no answer. The card has
// already been printed, so Execute only sets the exit code.
var errNoAnswer = errors.New("no answer")

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	relayURL   string
	apiKey     string
	targetBase string
	timeout    time.Duration
	plain      bool
	verbose    bool
}

// NewRootCmd creates the root command for brainhint.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "brainhint",
		Short: "Look up Brain Test level answers",
		Long: `brainhint fetches the walkthrough page for a Brain Test level through a
brainhint relay and prints the answer found on it.

Start the relay with brainhint-relay, then run "brainhint solve <level>".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
			if err := solver.ValidateTargetBase(opts.targetBase); err != nil {
				return fmt.Errorf("--target: %w", err)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.relayURL, "relay", envOr("BRAINHINT_RELAY_URL", "http://localhost:3000"), "relay base URL")
	flags.StringVar(&opts.apiKey, "api-key", os.Getenv("BRAINHINT_API_KEY"), "API key sent to the relay")
	flags.StringVar(&opts.targetBase, "target", envOr("BRAINHINT_TARGET_BASE", solver.DefaultTargetBase), "walkthrough URL template, %s is the level")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "timeout for each relay call")
	flags.BoolVar(&opts.plain, "plain", false, "print results without colors or borders")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newSolveCmd(opts))
	cmd.AddCommand(newPromptCmd(opts))
	cmd.AddCommand(newHealthCmd(opts))

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoAnswer) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func (o *rootOptions) newClient() *solver.RelayClient {
	var clientOpts []solver.ClientOption
	if o.apiKey != "" {
		clientOpts = append(clientOpts, solver.WithAPIKey(o.apiKey))
	}
	return solver.NewRelayClient(o.relayURL, clientOpts...)
}

func (o *rootOptions) newSolver() *solver.Solver {
	return solver.New(o.newClient(), solver.WithTargetBase(o.targetBase))
}

// setupLogging sends slog output to w; debug level when verbose.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
