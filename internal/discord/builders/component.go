package builders

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/challenge-bot-discord/internal/discord/core"
)

// Discord allows at most five components per action row
const maxRowComponents = 5

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	rows            []discordgo.MessageComponent
	currentRow      []discordgo.MessageComponent
	customIDBuilder *core.CustomIDBuilder
}

// NewComponentBuilder creates a new component builder
func NewComponentBuilder(customIDBuilder *core.CustomIDBuilder) *ComponentBuilder {
	return &ComponentBuilder{
		rows:            make([]discordgo.MessageComponent, 0),
		currentRow:      make([]discordgo.MessageComponent, 0, maxRowComponents),
		customIDBuilder: customIDBuilder,
	}
}

// Button adds a button whose custom ID is domain:action:target
func (b *ComponentBuilder) Button(label, emoji string, style discordgo.ButtonStyle, action, target string) *ComponentBuilder {
	button := discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.customIDBuilder.Button(action, target),
	}
	if emoji != "" {
		button.Emoji = &discordgo.ComponentEmoji{Name: emoji}
	}

	b.addComponent(button)
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, maxRowComponents)
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}

func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= maxRowComponents {
		b.NewRow()
	}
	b.currentRow = append(b.currentRow, component)
}
