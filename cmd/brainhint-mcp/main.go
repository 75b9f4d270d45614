package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/use-agent/brainhint/render"
	"github.com/use-agent/brainhint/solver"
)

func main() {
	relayURL := os.Getenv("BRAINHINT_RELAY_URL")
	if relayURL == "" {
		relayURL = "http://127.0.0.1:3000"
	}

	var clientOpts []solver.ClientOption
	if key := os.Getenv("BRAINHINT_API_KEY"); key != "" {
		clientOpts = append(clientOpts, solver.WithAPIKey(key))
	}
	var solverOpts []solver.Option
	if base := os.Getenv("BRAINHINT_TARGET_BASE"); base != "" {
		if err := solver.ValidateTargetBase(base); err != nil {
			fmt.Fprintf(os.Stderr, "BRAINHINT_TARGET_BASE: %v\n", err)
			os.Exit(1)
		}
		solverOpts = append(solverOpts, solver.WithTargetBase(base))
	}
	sv := solver.New(solver.NewRelayClient(relayURL, clientOpts...), solverOpts...)

	s := server.NewMCPServer(
		"brainhint",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	answerTool := mcp.NewTool("get_level_answer",
		mcp.WithDescription("Look up the answer to a Brain Test level. Fetches the level's walkthrough page through the brainhint relay and returns the answer text found on it."),
		mcp.WithString("level",
			mcp.Required(),
			mcp.Description("The Brain Test level number, e.g. \"42\""),
		),
	)

	s.AddTool(answerTool, handleGetLevelAnswer(sv))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleGetLevelAnswer(sv *solver.Solver) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		level, err := request.RequireString("level")
		if err != nil {
			return mcp.NewToolResultError("level is required"), nil
		}

		out, err := sv.FetchSolution(ctx, level)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if out.Kind == solver.KindTransportError {
			return mcp.NewToolResultError(render.Plain(out)), nil
		}
		return mcp.NewToolResultText(render.Plain(out)), nil
	}
}
