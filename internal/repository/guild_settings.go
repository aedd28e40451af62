package repository

import (
	"context"
	"errors"

	"github.com/forgo/arena/bot/internal/database"
	"github.com/forgo/arena/bot/internal/model"
)

// GuildSettingsRepository handles guild settings data access. Settings are
// keyed by guild ID, one record per guild.
type GuildSettingsRepository struct {
	db database.Database
}

// NewGuildSettingsRepository creates a new guild settings repository
func NewGuildSettingsRepository(db database.Database) *GuildSettingsRepository {
	return &GuildSettingsRepository{db: db}
}

// GetOrCreate returns the settings record for a guild, creating the default
// record on first use. The operation is idempotent.
func (r *GuildSettingsRepository) GetOrCreate(ctx context.Context, guildID string) (*model.GuildSettings, error) {
	settings, err := r.get(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	query := `
		CREATE type::thing('guild_settings', $guild_id) CONTENT {
			guild_id: $guild_id,
			standings_public: true
		}
	`
	vars := map[string]interface{}{"guild_id": guildID}

	if _, err := r.db.Query(ctx, query, vars); err != nil {
		// Record IDs are unique per guild, so a concurrent create is fine.
		if !isUniqueConstraintError(err) {
			return nil, err
		}
	}

	return r.get(ctx, guildID)
}

// SetNotificationChannel updates the channel announcements are posted to
func (r *GuildSettingsRepository) SetNotificationChannel(ctx context.Context, guildID, channelID string) error {
	query := `UPDATE type::thing('guild_settings', $guild_id) SET notification_channel_id = $channel_id`
	vars := map[string]interface{}{
		"guild_id":   guildID,
		"channel_id": channelID,
	}

	return r.db.Execute(ctx, query, vars)
}

func (r *GuildSettingsRepository) get(ctx context.Context, guildID string) (*model.GuildSettings, error) {
	query := `SELECT * FROM type::thing('guild_settings', $guild_id)`
	vars := map[string]interface{}{"guild_id": guildID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := asRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var settings model.GuildSettings
	if err := decodeRecord(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
