package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/challenge-bot-discord/internal/discord/builders"
	"github.com/KirkDiggler/challenge-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/challenge-bot-discord/internal/reveal"
	challengeService "github.com/KirkDiggler/challenge-bot-discord/internal/services/challenge"
	"github.com/KirkDiggler/challenge-bot-discord/internal/uuid"
)

// ActionReroll is the component action of the reroll button
const ActionReroll = "reroll"

// ChallengeHandler serves the /challenge subcommands and the reroll button
type ChallengeHandler struct {
	service         challengeService.Service
	customIDBuilder *core.CustomIDBuilder
	revealInterval  time.Duration
}

// ChallengeHandlerConfig holds configuration for the challenge handler
type ChallengeHandlerConfig struct {
	Service         challengeService.Service
	CustomIDBuilder *core.CustomIDBuilder
	RevealInterval  time.Duration // Zero reveals everything at once
}

func (c *ChallengeHandlerConfig) Validate() error {
	if c.Service == nil {
		return errors.New("service is required")
	}
	if c.CustomIDBuilder == nil {
		return errors.New("custom ID builder is required")
	}
	return nil
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(cfg *ChallengeHandlerConfig) (*ChallengeHandler, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ChallengeHandler{
		service:         cfg.Service,
		customIDBuilder: cfg.CustomIDBuilder,
		revealInterval:  cfg.RevealInterval,
	}, nil
}

// HandleRoll handles /challenge roll [count]
func (h *ChallengeHandler) HandleRoll(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.roll(ctx, ctx.GetIntParam("count", 1))
}

// HandleReroll handles the reroll button, which carries the original count
func (h *ChallengeHandler) HandleReroll(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := core.ParseCustomID(ctx.GetCustomID())
	if err != nil {
		return nil, core.NewValidationError("That button is no longer valid.")
	}

	count, err := strconv.Atoi(customID.Target)
	if err != nil {
		return nil, core.NewValidationError("That button is no longer valid.")
	}

	return h.roll(ctx, count)
}

func (h *ChallengeHandler) roll(ctx *core.InteractionContext, count int) (*core.HandlerResult, error) {
	result, err := h.service.Roll(ctx.Context, count)
	if err != nil {
		return nil, err
	}

	lines := reveal.Lines(result.Picks, result.Score)
	title, body := lines[0], lines[1:]
	frames := reveal.Frames(body)

	render := func(frame string, done bool) *core.Response {
		embed := builders.NewEmbed().
			Title(title).
			Description(frame).
			Color(builders.TierColor(result.Score.Tier)).
			Footer(fmt.Sprintf("Roll %s", uuid.Short(result.ID))).
			Build()

		response := core.Embed(embed)
		if done {
			response.Attach(h.rerollButton(count)...)
		}
		return response
	}

	responder := ctx.Responder()
	if responder == nil || h.revealInterval <= 0 || len(frames) == 1 {
		return core.Reply(render(frames[len(frames)-1], true)), nil
	}

	if err := responder.Defer(false); err != nil {
		return nil, fmt.Errorf("failed to defer roll: %w", err)
	}

	shown := 0
	err = reveal.Play(ctx.Context, frames, h.revealInterval, func(frame string) error {
		shown++
		return responder.Edit(render(frame, shown == len(frames)))
	})
	if err != nil {
		// The roll already happened, so finish the message instead of failing
		log.Printf("[Challenge] Reveal of %s stopped after %d of %d frames: %v", result.ID, shown, len(frames), err)
		return &core.HandlerResult{Response: render(frames[len(frames)-1], true), Deferred: true}, nil
	}

	return &core.HandlerResult{Deferred: true}, nil
}

func (h *ChallengeHandler) rerollButton(count int) []discordgo.MessageComponent {
	return builders.NewComponentBuilder(h.customIDBuilder).
		Button("Reroll", "🎲", discordgo.PrimaryButton, ActionReroll, strconv.Itoa(count)).
		Build()
}

// HandleGames handles /challenge games
func (h *ChallengeHandler) HandleGames(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	catalog := h.service.Catalog()

	var sb strings.Builder
	for _, game := range catalog.Games() {
		fmt.Fprintf(&sb, "**%s**: %s\n", game, strings.Join(catalog.Modifiers(game), ", "))
	}

	embed := builders.InfoEmbed(fmt.Sprintf("Games (%d)", catalog.Len()), sb.String()).Build()
	return core.Reply(core.Embed(embed).Private()), nil
}

// HandleWeights handles /challenge weights
func (h *ChallengeHandler) HandleWeights(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	weights := h.service.Weights()

	var sb strings.Builder
	for _, name := range weights.Names() {
		fmt.Fprintf(&sb, "%s: %d\n", name, weights[name])
	}

	embed := builders.InfoEmbed("Modifier Weights", sb.String()).
		Footer("Higher weights are rolled more often and hurt more.").
		Build()
	return core.Reply(core.Embed(embed).Private()), nil
}

// HandleHelp handles /challenge help
func (h *ChallengeHandler) HandleHelp(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	embed := builders.InfoEmbed("Challenge Roller", "Rolls random games with handicap modifiers.").
		Field("/challenge roll [count]", fmt.Sprintf("Roll 1 to %d challenges. A pick sometimes stacks two modifiers.", h.service.MaxRolls()), false).
		Field("/challenge games", "List every game and its modifiers.", false).
		Field("/challenge weights", "List modifier weights.", false).
		Field("Scoring", "Each pick scores the product of its weights out of 100. The roll's percentage is the average.", false).
		Build()
	return core.Reply(core.Embed(embed).Private()), nil
}
