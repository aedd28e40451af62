package platform

// Message is the payload sent back to the platform in answer to an
// interaction. Either Content or Embeds is set; Ephemeral restricts
// visibility to the invoking member.
type Message struct {
	Content   string  `json:"content,omitempty"`
	Embeds    []Embed `json:"embeds,omitempty"`
	Ephemeral bool    `json:"ephemeral"`
}

// Embed is a rich message block.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// EmbedField is a single name/value pair inside an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}
