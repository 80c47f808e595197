package builders

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
)

// Discord rejects embed descriptions longer than this
const MaxDescriptionLength = 4096

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

// Title sets the embed title
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the embed description, truncated to Discord's limit
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	if runes := []rune(description); len(runes) > MaxDescriptionLength {
		description = string(runes[:MaxDescriptionLength-1]) + "…"
	}
	b.embed.Description = description
	return b
}

// Color sets the embed color
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Timestamp sets the embed timestamp
func (b *EmbedBuilder) Timestamp(timestamp time.Time) *EmbedBuilder {
	b.embed.Timestamp = timestamp.Format(time.RFC3339)
	return b
}

// Footer sets the embed footer
func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{
		Text: text,
	}
	return b
}

// Field adds a field to the embed
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// Common embed colors
const (
	ColorSuccess = 0x00ff00 // Green
	ColorError   = 0xff0000 // Red
	ColorWarning = 0xffaa00 // Orange
	ColorInfo    = 0x0099ff // Blue
	ColorPrimary = 0x7289da // Discord Blurple
)

// TierColor maps a challenge tier to an embed color, harsher tiers run hotter
func TierColor(tier challenge.Tier) int {
	switch tier {
	case challenge.TierSpared:
		return ColorSuccess
	case challenge.TierTested:
		return ColorInfo
	case challenge.TierPunished:
		return ColorWarning
	case challenge.TierSuffer:
		return ColorError
	default:
		return ColorPrimary
	}
}

// InfoEmbed creates a pre-styled info embed
func InfoEmbed(title, description string) *EmbedBuilder {
	return NewEmbed().
		Title(title).
		Description(description).
		Color(ColorInfo)
}
