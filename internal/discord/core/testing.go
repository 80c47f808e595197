package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// TestOption shapes an interaction built by NewTestContext
type TestOption func(ic *InteractionContext)

// NewTestContext builds an InteractionContext without a Discord session.
// The caller is test-user in test-guild unless an option says otherwise.
func NewTestContext(opts ...TestOption) *InteractionContext {
	ic := &InteractionContext{
		Context: context.Background(),
		UserID:  "test-user",
		GuildID: "test-guild",
		params:  make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(ic)
	}
	return ic
}

// Command makes the interaction a slash command; sub may be empty
func Command(name, sub string) TestOption {
	return func(ic *InteractionContext) {
		ic.Interaction = &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: name},
		}}
		if sub != "" {
			ic.params["subcommand"] = sub
		}
	}
}

// Component makes the interaction a click on the component with this custom ID
func Component(customID string) TestOption {
	return func(ic *InteractionContext) {
		ic.Interaction = &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{CustomID: customID},
		}}
	}
}

// Param sets a command option. Discord delivers integer options as float64.
func Param(name string, value interface{}) TestOption {
	return func(ic *InteractionContext) { ic.params[name] = value }
}

func User(id string) TestOption {
	return func(ic *InteractionContext) { ic.UserID = id }
}

func Within(ctx context.Context) TestOption {
	return func(ic *InteractionContext) { ic.Context = ctx }
}

// FakeResponder records what would have been sent to Discord.
// The Fail fields make the matching call return that error.
type FakeResponder struct {
	Defers []bool
	Sent   []*Response
	Edited []*Response

	FailDefer   error
	FailRespond error
	FailEdit    error

	state replyState
}

func NewFakeResponder() *FakeResponder {
	return &FakeResponder{}
}

func (f *FakeResponder) Defer(ephemeral bool) error {
	f.Defers = append(f.Defers, ephemeral)
	if f.FailDefer != nil {
		return f.FailDefer
	}
	f.state = replyDeferred
	return nil
}

func (f *FakeResponder) Respond(response *Response) error {
	f.Sent = append(f.Sent, response)
	if f.FailRespond != nil {
		return f.FailRespond
	}
	if f.state == replyPending {
		f.state = replySent
	}
	return nil
}

func (f *FakeResponder) Edit(response *Response) error {
	f.Edited = append(f.Edited, response)
	return f.FailEdit
}

func (f *FakeResponder) HasResponded() bool { return f.state != replyPending }

func (f *FakeResponder) IsDeferred() bool { return f.state == replyDeferred }
