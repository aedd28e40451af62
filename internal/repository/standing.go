package repository

import (
	"context"
	"errors"

	"github.com/forgo/arena/bot/internal/database"
	"github.com/forgo/arena/bot/internal/model"
)

// StandingRepository handles standing data access
type StandingRepository struct {
	db database.Database
}

// NewStandingRepository creates a new standing repository
func NewStandingRepository(db database.Database) *StandingRepository {
	return &StandingRepository{db: db}
}

// GetOrCreate finds the standing for a member, creating a zeroed record if
// none exists. An empty tournamentID addresses the member's career standing.
// The operation is idempotent.
func (r *StandingRepository) GetOrCreate(ctx context.Context, guildID, memberID, tournamentID string) (*model.Standing, error) {
	standing, err := r.get(ctx, guildID, memberID, tournamentID)
	if err != nil {
		return nil, err
	}
	if standing != nil {
		return standing, nil
	}

	query := `
		CREATE standing CONTENT {
			member_id: $member_id,
			guild_id: $guild_id,
			tournament_id: IF $tournament_id IS NOT NULL THEN $tournament_id ELSE NONE END,
			points: 0,
			wins: 0,
			losses: 0
		}
	`
	vars := map[string]interface{}{
		"member_id":     memberID,
		"guild_id":      guildID,
		"tournament_id": nilIfEmpty(tournamentID),
	}

	if _, err := r.db.Query(ctx, query, vars); err != nil {
		// Lost a race with a concurrent create; the existing record wins.
		if !isUniqueConstraintError(err) {
			return nil, err
		}
	}

	return r.get(ctx, guildID, memberID, tournamentID)
}

// AddPoints adds points to a standing and returns the updated record
func (r *StandingRepository) AddPoints(ctx context.Context, standingID string, delta int) (*model.Standing, error) {
	query := `UPDATE type::thing('standing', $id) SET points += $delta RETURN AFTER`
	vars := map[string]interface{}{
		"id":    standingID,
		"delta": delta,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseStandingResult(result)
}

func (r *StandingRepository) get(ctx context.Context, guildID, memberID, tournamentID string) (*model.Standing, error) {
	query := `
		SELECT * FROM standing
		WHERE guild_id = $guild_id
		  AND member_id = $member_id
		  AND tournament_id = IF $tournament_id IS NOT NULL THEN $tournament_id ELSE NONE END
		LIMIT 1
	`
	vars := map[string]interface{}{
		"guild_id":      guildID,
		"member_id":     memberID,
		"tournament_id": nilIfEmpty(tournamentID),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseStandingResult(result)
}

func parseStandingResult(result interface{}) (*model.Standing, error) {
	data, err := asRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var standing model.Standing
	if err := decodeRecord(data, &standing); err != nil {
		return nil, err
	}
	return &standing, nil
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
