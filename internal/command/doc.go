// Package command defines the Arena bot's commands on top of the pipeline.
//
// Each command is a pipeline.Command built once at startup: its constraint
// maps, validate/solve functions, and per-status describe map. The Registry
// holds the full command set and dispatches interactions by qualified name.
package command
