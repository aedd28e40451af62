package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/forgo/arena/bot/internal/platform"
)

// ValidateFunc maps a raw interaction to typed solver params. It returns
// exactly one of: params, a validation-failure outcome, or a fatal error.
// A fatal error means the command definition itself broke its contract
// (e.g. extraction hit an option type the constraints should have caught);
// it propagates to the dispatcher instead of becoming an outcome.
type ValidateFunc[P any] func(inter *platform.Interaction) (P, *Outcome, error)

// SolveFunc performs the domain operation for already-validated params.
// It always returns an outcome; collaborator failures are converted to
// UnknownFailure inside the solver, never returned as errors.
type SolveFunc[P any] func(ctx context.Context, params P) *Outcome

// DescribeFunc projects a finished outcome into a presentation payload.
// Describe functions are pure: no I/O, no failure path.
type DescribeFunc func(o *Outcome) platform.Message

// DescribeMap holds per-status renderers. Statuses absent from the map fall
// back to the generic renderers owned by the pipeline.
type DescribeMap map[Status]DescribeFunc

// Command composes the three stages for one command definition. A Command is
// built once at startup and shared read-only across requests; each Run is an
// independent, stateless execution.
type Command[P any] struct {
	Name     string
	Validate ValidateFunc[P]
	Solve    SolveFunc[P]
	Describe DescribeMap
}

// CommandName returns the qualified command name.
func (c *Command[P]) CommandName() string {
	return c.Name
}

// Run executes validate, solve, and describe for one interaction. A
// validation failure skips the solver and goes straight to describe. The
// returned error is non-nil only for the fatal validation case; every other
// path yields a message.
func (c *Command[P]) Run(ctx context.Context, inter *platform.Interaction) (platform.Message, error) {
	log := slog.With(
		slog.String("command", c.Name),
		slog.String("run_id", uuid.NewString()),
		slog.String("guild_id", inter.GuildID),
	)

	params, failed, err := c.Validate(inter)
	if err != nil {
		return platform.Message{}, fmt.Errorf("validate %s: %w", c.Name, err)
	}

	outcome := failed
	if outcome == nil {
		outcome = c.solve(ctx, params, log)
	} else if verr, ok := outcome.ValidationBody(); ok && verr != nil {
		log.Info("validation failed",
			slog.String("constraint", verr.ConstraintID),
			slog.String("field", verr.Field),
		)
	}

	return c.describe(outcome), nil
}

// solve runs the solver inside its failure boundary: a panic or a nil result
// becomes the opaque unknown-failure outcome.
func (c *Command[P]) solve(ctx context.Context, params P, log *slog.Logger) (out *Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("solver panic", slog.Any("panic", r))
			out = UnknownFailure()
		}
	}()

	out = c.Solve(ctx, params)
	if out == nil {
		log.Error("solver returned no outcome")
		out = UnknownFailure()
	}
	return out
}

func (c *Command[P]) describe(o *Outcome) platform.Message {
	if fn, ok := c.Describe[o.Status]; ok {
		return fn(o)
	}
	return describeGeneric(o)
}
