package core

import (
	"sync"

	"github.com/bwmarrin/discordgo"

	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
)

// Responder sends the reply to an interaction.
// Discord allows exactly one initial reply (or defer); everything after that is an edit.
type Responder interface {
	Defer(ephemeral bool) error
	Respond(response *Response) error
	Edit(response *Response) error
	HasResponded() bool
	IsDeferred() bool
}

type replyState int

const (
	replyPending replyState = iota
	replyDeferred
	replySent
)

// DiscordResponder answers one interaction through the Discord API
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction

	mu    sync.Mutex
	state replyState
}

func NewDiscordResponder(s *discordgo.Session, i *discordgo.InteractionCreate) *DiscordResponder {
	return &DiscordResponder{session: s, interaction: i.Interaction}
}

// Defer acknowledges the interaction so the reply can arrive later as an edit
func (r *DiscordResponder) Defer(ephemeral bool) error {
	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return r.acknowledge(discordgo.InteractionResponseDeferredChannelMessageWithSource, data, replyDeferred)
}

// Respond sends the initial reply, or edits it when one was already sent
func (r *DiscordResponder) Respond(response *Response) error {
	if r.HasResponded() {
		return r.Edit(response)
	}
	return r.acknowledge(discordgo.InteractionResponseChannelMessageWithSource, response.messageData(), replySent)
}

// Edit replaces the content of the initial reply
func (r *DiscordResponder) Edit(response *Response) error {
	if !r.HasResponded() {
		return cberr.Internal("cannot edit an interaction before replying")
	}
	_, err := r.session.InteractionResponseEdit(r.interaction, response.webhookEdit())
	return err
}

func (r *DiscordResponder) HasResponded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state != replyPending
}

func (r *DiscordResponder) IsDeferred() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == replyDeferred
}

func (r *DiscordResponder) acknowledge(kind discordgo.InteractionResponseType, data *discordgo.InteractionResponseData, next replyState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != replyPending {
		return cberr.Internal("interaction was already acknowledged")
	}

	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{Type: kind, Data: data})
	if err != nil {
		return err
	}

	r.state = next
	return nil
}
