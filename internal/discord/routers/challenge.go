package routers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/challenge-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/challenge-bot-discord/internal/discord/handlers"
	challengeService "github.com/KirkDiggler/challenge-bot-discord/internal/services/challenge"
)

// CommandName is the slash command this router serves
const CommandName = "challenge"

// ChallengeRouter handles /challenge commands and the reroll button
type ChallengeRouter struct {
	router  *core.Router
	handler *handlers.ChallengeHandler
}

type ChallengeRouterConfig struct {
	Pipeline       *core.Pipeline
	Service        challengeService.Service
	RevealInterval time.Duration

	// Middleware applied to roll and reroll only, e.g. rate limiting
	RollMiddleware []core.Middleware
}

func (c *ChallengeRouterConfig) Validate() error {
	if c.Pipeline == nil {
		return errors.New("pipeline is required")
	}
	if c.Service == nil {
		return errors.New("service is required")
	}
	return nil
}

// NewChallengeRouter creates the router and registers it with the pipeline
func NewChallengeRouter(cfg *ChallengeRouterConfig) (*ChallengeRouter, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	router := core.NewRouter(CommandName, cfg.Pipeline)

	handler, err := handlers.NewChallengeHandler(&handlers.ChallengeHandlerConfig{
		Service:         cfg.Service,
		CustomIDBuilder: router.GetCustomIDBuilder(),
		RevealInterval:  cfg.RevealInterval,
	})
	if err != nil {
		return nil, err
	}

	cr := &ChallengeRouter{
		router:  router,
		handler: handler,
	}

	// Listing commands are cheap and never rate limited
	router.SubcommandFunc("games", handler.HandleGames)
	router.SubcommandFunc("weights", handler.HandleWeights)
	router.SubcommandFunc("help", handler.HandleHelp)

	router.Use(cfg.RollMiddleware...)
	router.SubcommandFunc("roll", handler.HandleRoll)
	router.ComponentFunc(handlers.ActionReroll, handler.HandleReroll)

	router.Register()

	return cr, nil
}

// Commands returns the slash command definitions
func Commands(maxRolls int) []*discordgo.ApplicationCommand {
	minCount := 1.0

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandName,
			Description: "Roll a random game challenge",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "roll",
					Description: "Roll games with random modifiers",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "count",
							Description: fmt.Sprintf("How many games to roll (1-%d, default 1)", maxRolls),
							Required:    false,
							MinValue:    &minCount,
							MaxValue:    float64(maxRolls),
						},
					},
				},
				{
					Name:        "games",
					Description: "List the games and their modifiers",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "weights",
					Description: "List the modifier weights",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "help",
					Description: "How the challenge roller works",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}
}

// CommandCreator is the part of *discordgo.Session used to register commands
type CommandCreator interface {
	ApplicationCommandCreate(appID string, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
}

// RegisterCommands registers the slash commands, globally when guildID is empty
func RegisterCommands(s CommandCreator, appID, guildID string, maxRolls int) error {
	for _, cmd := range Commands(maxRolls) {
		if _, err := s.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}
	return nil
}
