package model

// Tournament represents a tournament hosted in a guild. The ID is a platform
// snowflake, so the creation instant is derivable from it; no created_on
// column is stored. Zero, one, or (inconsistently) several tournaments may be
// flagged active for a guild at once; readers resolve that ambiguity, the
// model does not prevent it.
type Tournament struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	GuildID string `json:"guild_id"`
	Active  bool   `json:"active"`
}

// Business constraints
const (
	MaxTournamentNameLength = 100
)
