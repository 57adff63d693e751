// Package embed provides a small fluent builder over discordgo message
// embeds, clamping fields to Discord's limits.
package embed

import "github.com/bwmarrin/discordgo"

const (
	limitTitle       = 256
	limitDescription = 2048
	limitFieldName   = 256
	limitFieldValue  = 1024
	limitFooter      = 2048
	limitFieldCount  = 25
)

// Embed wraps a discordgo MessageEmbed for chained construction.
type Embed struct {
	*discordgo.MessageEmbed
}

// NewEmbed returns an empty embed.
func NewEmbed() *Embed {
	return &Embed{&discordgo.MessageEmbed{}}
}

// SetTitle sets the embed title.
func (e *Embed) SetTitle(title string) *Embed {
	e.Title = clamp(title, limitTitle)
	return e
}

// SetDescription sets the embed description.
func (e *Embed) SetDescription(description string) *Embed {
	e.Description = clamp(description, limitDescription)
	return e
}

// AddField appends a named field. Fields past Discord's cap are dropped.
func (e *Embed) AddField(name, value string) *Embed {
	if len(e.Fields) >= limitFieldCount {
		return e
	}
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
		Name:  clamp(name, limitFieldName),
		Value: clamp(value, limitFieldValue),
	})
	return e
}

// SetFooter sets the footer text.
func (e *Embed) SetFooter(text string) *Embed {
	e.Footer = &discordgo.MessageEmbedFooter{Text: clamp(text, limitFooter)}
	return e
}

// SetColor sets the accent colour.
func (e *Embed) SetColor(color int) *Embed {
	e.Color = color
	return e
}

// InlineAllFields marks every field inline.
func (e *Embed) InlineAllFields() *Embed {
	for _, field := range e.Fields {
		field.Inline = true
	}
	return e
}

func clamp(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
