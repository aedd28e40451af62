package model

// Standing tracks a member's points within a guild. A standing with an empty
// TournamentID is the member's career record; otherwise it is scoped to one
// tournament.
type Standing struct {
	ID           string `json:"id"`
	MemberID     string `json:"member_id"`
	GuildID      string `json:"guild_id"`
	TournamentID string `json:"tournament_id,omitempty"`
	Points       int    `json:"points"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// Point award limits
const (
	MinPointAward = 1
	MaxPointAward = 1000
)
