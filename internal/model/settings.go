package model

// GuildSettings stores per-guild bot configuration, keyed by guild ID.
// The "current tournament" a guild sees is a derived view over the
// tournament collection; settings own no tournament state themselves.
type GuildSettings struct {
	GuildID               string `json:"guild_id"`
	NotificationChannelID string `json:"notification_channel_id,omitempty"`
	StandingsPublic       bool   `json:"standings_public"`
}

// GuildView is the resolved per-guild state handed to presentation code:
// the stored settings plus the currently active tournament, which is nil
// when no tournament is open.
type GuildView struct {
	Settings *GuildSettings `json:"settings"`
	Current  *Tournament    `json:"current,omitempty"`
}
