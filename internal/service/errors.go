package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency.

// ===== Tournament Errors =====
var (
	ErrTournamentNameRequired = errors.New("tournament name is required")
	ErrTournamentNameTooLong  = errors.New("tournament name exceeds maximum length")
	ErrTournamentExists       = errors.New("a tournament with this ID already exists")
)

// ===== Standing Errors =====
var (
	ErrInvalidPoints = errors.New("points must be within the allowed range")
)
