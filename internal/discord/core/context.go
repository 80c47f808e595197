package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type contextKey string

const (
	responderKey contextKey = "responder"
	requestIDKey contextKey = "request_id"
)

// InteractionContext wraps a Discord interaction with useful helpers and context
type InteractionContext struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	// Extracted common fields for convenience
	UserID    string
	GuildID   string
	ChannelID string

	// Context for cancellation and values
	Context context.Context

	params map[string]interface{}
}

// NewInteractionContext creates a new InteractionContext from a Discord interaction
func NewInteractionContext(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionContext {
	ic := &InteractionContext{
		Session:     s,
		Interaction: i,
		Context:     ctx,
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		params:      make(map[string]interface{}),
	}

	if i.Member != nil && i.Member.User != nil {
		ic.UserID = i.Member.User.ID
	} else if i.User != nil {
		ic.UserID = i.User.ID
	}

	if i.Type == discordgo.InteractionApplicationCommand {
		ic.parseOptions(i.ApplicationCommandData().Options)
	}

	return ic
}

// parseOptions recursively extracts command options
func (ic *InteractionContext) parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionSubCommand {
			ic.params["subcommand"] = opt.Name
			ic.parseOptions(opt.Options)
			continue
		}
		ic.params[opt.Name] = opt.Value
	}
}

// GetParam retrieves a parameter by name
func (ic *InteractionContext) GetParam(name string) interface{} {
	return ic.params[name]
}

// GetStringParam retrieves a string parameter or returns empty string
func (ic *InteractionContext) GetStringParam(name string) string {
	if val, ok := ic.params[name]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
	}
	return ""
}

// GetIntParam retrieves an int parameter, or def if it was not given.
// Discord sends integer options as float64.
func (ic *InteractionContext) GetIntParam(name string, def int) int {
	if val, ok := ic.params[name]; ok {
		switch v := val.(type) {
		case float64:
			return int(v)
		case int:
			return v
		case int64:
			return int(v)
		}
	}
	return def
}

// IsCommand checks if this is a slash command interaction
func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction != nil && ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

// IsComponent checks if this is a message component interaction
func (ic *InteractionContext) IsComponent() bool {
	return ic.Interaction != nil && ic.Interaction.Type == discordgo.InteractionMessageComponent
}

// GetCustomID returns the custom ID for component interactions
func (ic *InteractionContext) GetCustomID() string {
	if ic.IsComponent() {
		return ic.Interaction.MessageComponentData().CustomID
	}
	return ""
}

// GetCommandName returns the command name for slash commands
func (ic *InteractionContext) GetCommandName() string {
	if ic.IsCommand() {
		return ic.Interaction.ApplicationCommandData().Name
	}
	return ""
}

// GetSubcommand returns the subcommand name if present
func (ic *InteractionContext) GetSubcommand() string {
	return ic.GetStringParam("subcommand")
}

// Describe names the interaction for logs, e.g. "challenge/roll" or "challenge:reroll"
func (ic *InteractionContext) Describe() string {
	if ic.IsCommand() {
		if sub := ic.GetSubcommand(); sub != "" {
			return ic.GetCommandName() + "/" + sub
		}
		return ic.GetCommandName()
	}
	if ic.IsComponent() {
		if parsed, err := ParseCustomID(ic.GetCustomID()); err == nil {
			return parsed.Domain + ":" + parsed.Action
		}
		return ic.GetCustomID()
	}
	return "unknown"
}

// WithValue adds a value to the context
func (ic *InteractionContext) WithValue(key, val interface{}) {
	ic.Context = context.WithValue(ic.Context, key, val)
}

// Value retrieves a value from the context
func (ic *InteractionContext) Value(key interface{}) interface{} {
	return ic.Context.Value(key)
}

// SetResponder attaches the responder handlers use for deferred and progressive replies
func (ic *InteractionContext) SetResponder(r Responder) {
	ic.WithValue(responderKey, r)
}

// Responder returns the attached responder, nil if none
func (ic *InteractionContext) Responder() Responder {
	r, _ := ic.Value(responderKey).(Responder)
	return r
}

// SetRequestID records the request ID for this interaction
func (ic *InteractionContext) SetRequestID(id string) {
	ic.WithValue(requestIDKey, id)
}

// RequestID returns the request ID, empty if none was assigned
func (ic *InteractionContext) RequestID() string {
	id, _ := ic.Value(requestIDKey).(string)
	return id
}
