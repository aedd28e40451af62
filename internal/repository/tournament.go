package repository

import (
	"context"
	"fmt"

	"github.com/forgo/arena/bot/internal/database"
	"github.com/forgo/arena/bot/internal/model"
)

// TournamentRepository handles tournament data access
type TournamentRepository struct {
	db database.Database
}

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db database.Database) *TournamentRepository {
	return &TournamentRepository{db: db}
}

// Create creates a tournament with an explicit snowflake ID
func (r *TournamentRepository) Create(ctx context.Context, tournament *model.Tournament) error {
	query := `
		CREATE type::thing('tournament', $id) CONTENT {
			name: $name,
			guild_id: $guild_id,
			active: $active
		}
	`

	vars := map[string]interface{}{
		"id":       tournament.ID,
		"name":     tournament.Name,
		"guild_id": tournament.GuildID,
		"active":   tournament.Active,
	}

	if _, err := r.db.Query(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: tournament already exists", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// ListByGuild retrieves all tournaments for a guild
func (r *TournamentRepository) ListByGuild(ctx context.Context, guildID string) ([]*model.Tournament, error) {
	query := `SELECT * FROM tournament WHERE guild_id = $guild_id`
	vars := map[string]interface{}{"guild_id": guildID}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseTournaments(results)
}

// ListActiveByGuild retrieves the tournaments currently flagged active for a
// guild. More than one record may come back; resolving that is the caller's
// concern.
func (r *TournamentRepository) ListActiveByGuild(ctx context.Context, guildID string) ([]*model.Tournament, error) {
	query := `SELECT * FROM tournament WHERE guild_id = $guild_id AND active = true`
	vars := map[string]interface{}{"guild_id": guildID}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseTournaments(results)
}

// SetActive flips a tournament's active flag
func (r *TournamentRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE type::thing('tournament', $id) SET active = $active`
	vars := map[string]interface{}{
		"id":     id,
		"active": active,
	}

	return r.db.Execute(ctx, query, vars)
}

func parseTournaments(results []interface{}) ([]*model.Tournament, error) {
	tournaments := make([]*model.Tournament, 0)
	for _, data := range collectRecords(results) {
		var tournament model.Tournament
		if err := decodeRecord(data, &tournament); err != nil {
			continue
		}
		tournaments = append(tournaments, &tournament)
	}
	return tournaments, nil
}
