package builders

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
	"github.com/KirkDiggler/challenge-bot-discord/internal/discord/core"
)

func TestEmbedBuilder(t *testing.T) {
	embed := NewEmbed().
		Title("Your Win Challenge").
		Description("1. Chess - Blindfold").
		Color(TierColor(challenge.TierSuffer)).
		Field("Tier", "suffer", true).
		Footer("Roll abc").
		Build()

	assert.Equal(t, "Your Win Challenge", embed.Title)
	assert.Equal(t, ColorError, embed.Color)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "Roll abc", embed.Footer.Text)
}

func TestEmbedBuilder_TruncatesDescription(t *testing.T) {
	embed := NewEmbed().Description(strings.Repeat("x", MaxDescriptionLength+10)).Build()

	assert.Len(t, []rune(embed.Description), MaxDescriptionLength)
	assert.True(t, strings.HasSuffix(embed.Description, "…"))
}

func TestTierColor(t *testing.T) {
	assert.Equal(t, ColorSuccess, TierColor(challenge.TierSpared))
	assert.Equal(t, ColorInfo, TierColor(challenge.TierTested))
	assert.Equal(t, ColorWarning, TierColor(challenge.TierPunished))
	assert.Equal(t, ColorError, TierColor(challenge.TierSuffer))
	assert.Equal(t, ColorPrimary, TierColor(challenge.Tier("unknown")))
}

func TestComponentBuilder(t *testing.T) {
	b := NewComponentBuilder(core.NewCustomIDBuilder("challenge"))
	for i := 0; i < 6; i++ {
		b.Button("Reroll", "🎲", discordgo.PrimaryButton, "reroll", "3")
	}

	rows := b.Build()

	require.Len(t, rows, 2)
	first := rows[0].(discordgo.ActionsRow)
	assert.Len(t, first.Components, 5)
	button := first.Components[0].(discordgo.Button)
	assert.Equal(t, "challenge:reroll:3", button.CustomID)
	assert.Equal(t, "🎲", button.Emoji.Name)
}
