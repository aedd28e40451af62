// Package pipeline implements the command execution pipeline for the Arena
// bot.
//
// Every command runs the same three stages:
//
//	validate → solve → describe
//
// Validation maps the raw interaction to typed solver params using declared
// constraint maps; a failing constraint becomes a validation-failure outcome
// and the solver is skipped. The solver performs the domain operation and
// always produces an outcome: collaborator errors and panics collapse into
// the generic unknown-failure outcome at the solver boundary. Describe turns
// the finished outcome into the message sent back to the platform, using the
// command's per-status renderers with a generic fallback.
//
// # Outcomes
//
// Outcomes are tagged values: the Status field uniquely determines the
// dynamic type of Body. Two statuses are generic (validation failure, unknown
// failure); each command package declares its own success statuses and body
// shapes next to its constructors.
//
// # Sharing
//
// Command definitions and their constraint maps are built once at startup and
// never mutated afterwards, so they are shared across concurrent requests
// without locking. Each Run is independent; no state survives an invocation.
package pipeline
