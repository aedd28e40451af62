package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/arena/bot/internal/command"
	"github.com/forgo/arena/bot/internal/middleware"
	"github.com/forgo/arena/bot/internal/platform"
)

// InteractionHandler handles incoming slash-command interactions
type InteractionHandler struct {
	registry *command.Registry
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(registry *command.Registry) *InteractionHandler {
	return &InteractionHandler{registry: registry}
}

// Handle handles POST /interactions - dispatch a command interaction
//
// Unknown commands are a client error. Fatal command errors are logged and
// answered with a generic ephemeral message so the invoking member always
// sees a response.
func (h *InteractionHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var inter platform.Interaction
	if err := DecodeJSON(r, &inter); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid interaction payload")
		return
	}

	msg, err := h.registry.Dispatch(ctx, &inter)
	if err != nil {
		if errors.Is(err, command.ErrUnknownCommand) {
			WriteError(w, http.StatusNotFound, "unknown command: "+inter.Command)
			return
		}

		slog.Error("command failed",
			slog.String("command", inter.Command),
			slog.String("request_id", middleware.GetRequestID(ctx)),
			slog.Any("error", err),
		)
		WriteJSON(w, http.StatusOK, platform.Message{
			Content:   "Something went wrong. Please try again later.",
			Ephemeral: true,
		})
		return
	}

	WriteJSON(w, http.StatusOK, msg)
}
