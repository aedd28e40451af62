package platform

// Metadata field names usable as constraint-map keys.
const (
	MetaGuildID   = "guild_id"
	MetaChannelID = "channel_id"
	MetaMemberID  = "member_id"
)

// Member is a guild member as seen by the chat platform.
type Member struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Option is a named, typed value supplied with a command invocation.
type Option struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// String returns the option value as a string.
func (o Option) String() (string, bool) {
	s, ok := o.Value.(string)
	return s, ok
}

// UserID returns the option value as a member ID. User options carry the
// target's snowflake ID as a string.
func (o Option) UserID() (string, bool) {
	return o.String()
}

// Int returns the option value as an int. Decoded JSON numbers arrive as
// float64, so both forms are accepted.
func (o Option) Int() (int, bool) {
	switch v := o.Value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Interaction is a single command invocation received from the chat platform.
// It is read-only to the pipeline: stages extract from it, never mutate it.
type Interaction struct {
	ID        string   `json:"id"`
	Command   string   `json:"command"`
	GuildID   string   `json:"guild_id"`
	ChannelID string   `json:"channel_id"`
	Member    Member   `json:"member"`
	Options   []Option `json:"options,omitempty"`
}

// Option looks up a named option.
func (i *Interaction) Option(name string) (Option, bool) {
	for _, o := range i.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// MetaValue extracts a metadata field by name. The second return reports
// whether the field name is one the interaction carries.
func (i *Interaction) MetaValue(field string) (interface{}, bool) {
	switch field {
	case MetaGuildID:
		return i.GuildID, true
	case MetaChannelID:
		return i.ChannelID, true
	case MetaMemberID:
		return i.Member.ID, true
	}
	return nil, false
}
