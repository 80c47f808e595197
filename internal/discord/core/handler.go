package core

import (
	"github.com/bwmarrin/discordgo"
)

// Handler processes the interactions it claims through CanHandle
type Handler interface {
	CanHandle(ctx *InteractionContext) bool
	Handle(ctx *InteractionContext) (*HandlerResult, error)
}

// HandlerFunc adapts a function into a Handler that accepts everything.
// Routers put the matching in front of it.
type HandlerFunc func(ctx *InteractionContext) (*HandlerResult, error)

func (f HandlerFunc) CanHandle(*InteractionContext) bool { return true }

func (f HandlerFunc) Handle(ctx *InteractionContext) (*HandlerResult, error) { return f(ctx) }

// HandlerResult is what the pipeline delivers after a handler returns.
// When Deferred is set the interaction was already acknowledged and Response
// goes out as an edit of the original message.
type HandlerResult struct {
	Response *Response
	Deferred bool
}

// Reply wraps a response that still has to be sent
func Reply(r *Response) *HandlerResult {
	return &HandlerResult{Response: r}
}

// Response is the body of a reply or of an edit
type Response struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent
	Ephemeral  bool
}

// Text is a plain message for the whole channel
func Text(content string) *Response {
	return &Response{Content: content}
}

// Notice is a message only the invoking user can see
func Notice(content string) *Response {
	return &Response{Content: content, Ephemeral: true}
}

// Embed is a message carrying one embed
func Embed(embed *discordgo.MessageEmbed) *Response {
	return &Response{Embeds: []*discordgo.MessageEmbed{embed}}
}

// Attach sets the message components, replacing any already set
func (r *Response) Attach(components ...discordgo.MessageComponent) *Response {
	r.Components = components
	return r
}

// Private hides the message from everyone but the invoking user
func (r *Response) Private() *Response {
	r.Ephemeral = true
	return r
}

func (r *Response) messageData() *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:    r.Content,
		Embeds:     r.Embeds,
		Components: r.Components,
	}
	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}

// Ephemeral is fixed by the first reply; edits cannot change it
func (r *Response) webhookEdit() *discordgo.WebhookEdit {
	embeds := r.Embeds
	components := r.Components
	if embeds == nil {
		embeds = []*discordgo.MessageEmbed{}
	}
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	return &discordgo.WebhookEdit{
		Content:    &r.Content,
		Embeds:     &embeds,
		Components: &components,
	}
}
