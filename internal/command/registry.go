package command

import (
	"context"
	"errors"

	"github.com/forgo/arena/bot/internal/platform"
)

// ErrUnknownCommand indicates an interaction named a command the registry
// does not hold.
var ErrUnknownCommand = errors.New("unknown command")

// Handler is one registered command. pipeline.Command satisfies it.
type Handler interface {
	CommandName() string
	Run(ctx context.Context, inter *platform.Interaction) (platform.Message, error)
}

// Registry holds the process-wide command set. It is populated once at
// startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	commands map[string]Handler
}

// NewRegistry builds a registry from command definitions. Subcommand names
// are space-joined into the qualified name (e.g. "tournament create").
func NewRegistry(handlers ...Handler) *Registry {
	commands := make(map[string]Handler, len(handlers))
	for _, h := range handlers {
		commands[h.CommandName()] = h
	}
	return &Registry{commands: commands}
}

// Lookup finds a handler by qualified command name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.commands[name]
	return h, ok
}

// Dispatch resolves the interaction's command and runs it.
func (r *Registry) Dispatch(ctx context.Context, inter *platform.Interaction) (platform.Message, error) {
	h, ok := r.Lookup(inter.Command)
	if !ok {
		return platform.Message{}, ErrUnknownCommand
	}
	return h.Run(ctx, inter)
}
