// Package solver turns a Brain Test level number into its answer by fetching
// the walkthrough page through the relay and extracting the answer text.
package solver

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// Kind tells which variant an Outcome holds.
type Kind int

const (
	KindFound Kind = iota
	KindNotFound
	KindTransportError
)

func (k Kind) String() string {
	switch k {
	case KindFound:
		return "found"
	case KindNotFound:
		return "not_found"
	case KindTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Outcome is the result of one FetchSolution call.
//
// Answer and Selector are set for KindFound; Category, Status and Detail are
// set for KindTransportError. Level is always set.
type Outcome struct {
	Kind     Kind
	Level    string
	Answer   string
	Selector string
	Category Category
	Status   int
	Detail   string
}

// Proxier fetches a page through the relay.
type Proxier interface {
	Proxy(ctx context.Context, target string) (string, error)
}

// Solver runs the fetch-and-extract pipeline. It holds no per-request state,
// so concurrent calls are independent.
type Solver struct {
	relay      Proxier
	targetBase string
}

// Option configures a Solver.
type Option func(*Solver)

// WithTargetBase overrides DefaultTargetBase.
func WithTargetBase(base string) Option {
	return func(s *Solver) { s.targetBase = base }
}

// New creates a Solver that fetches through relay.
func New(relay Proxier, opts ...Option) *Solver {
	s := &Solver{relay: relay, targetBase: DefaultTargetBase}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateLevel rejects empty or whitespace-only input.
func ValidateLevel(level string) error {
	if strings.TrimSpace(level) == "" {
		return ErrEmptyLevel
	}
	return nil
}

// FetchSolution fetches the walkthrough for level and extracts its answer.
//
// The only errors are ErrEmptyLevel and ErrTargetBase, returned before any
// request is built. Every other failure is reported in the Outcome.
func (s *Solver) FetchSolution(ctx context.Context, level string) (Outcome, error) {
	if err := ValidateLevel(level); err != nil {
		return Outcome{}, err
	}
	if err := ValidateTargetBase(s.targetBase); err != nil {
		return Outcome{}, err
	}

	target := TargetURL(s.targetBase, level)
	slog.Debug("fetching solution", "level", level, "url", target)

	raw, err := s.relay.Proxy(ctx, target)
	if err != nil {
		out := Outcome{
			Kind:     KindTransportError,
			Level:    level,
			Category: CategoryGeneric,
			Detail:   err.Error(),
		}
		var te *TransportError
		if errors.As(err, &te) {
			out.Category = te.Category
			out.Status = te.Status
		}
		slog.Warn("solution fetch failed", "level", level, "category", out.Category, "error", err)
		return out, nil
	}

	match, ok := Extract(ParseDocument(raw))
	if !ok {
		slog.Info("no answer on page", "level", level, "bytes", len(raw))
		return Outcome{Kind: KindNotFound, Level: level}, nil
	}

	slog.Debug("answer extracted", "level", level, "selector", match.Selector)
	return Outcome{
		Kind:     KindFound,
		Level:    level,
		Answer:   match.Text,
		Selector: match.Selector,
	}, nil
}
