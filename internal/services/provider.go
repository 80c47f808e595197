package services

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/challenge-bot-discord/internal/config"
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
	"github.com/KirkDiggler/challenge-bot-discord/internal/loader"
	"github.com/KirkDiggler/challenge-bot-discord/internal/repositories/challenges"
	challengeService "github.com/KirkDiggler/challenge-bot-discord/internal/services/challenge"
)

// Provider holds all service instances
type Provider struct {
	ChallengeService    challengeService.Service
	ChallengeRepository challenges.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Challenge config.ChallengeConfig

	// Optional - in-memory repository if nil
	RedisClient redis.UniversalClient
}

// NewProvider loads the challenge table and creates the services
func NewProvider(ctx context.Context, cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		return nil, cberr.InvalidArgument("provider config is required")
	}

	repo := challenges.NewInMemoryRepository()
	if cfg.RedisClient != nil {
		repo = challenges.NewRedis(cfg.RedisClient)
	}

	var src loader.Source
	switch cfg.Challenge.Source {
	case config.SourceRedis:
		if cfg.RedisClient == nil {
			return nil, cberr.Configuration("CHALLENGE_SOURCE=redis needs a reachable REDIS_URL")
		}
		src = &loader.RepositorySource{Repository: repo}
	default:
		src = &loader.FileSource{
			GamesPath:   cfg.Challenge.GamesFile,
			WeightsPath: cfg.Challenge.WeightsFile,
		}
	}

	table, err := loader.Load(ctx, src)
	if err != nil {
		return nil, cberr.Wrap(err, "failed to load challenge table")
	}

	service, err := challengeService.NewService(&challengeService.ServiceConfig{
		Table:    table,
		MaxRolls: cfg.Challenge.MaxRolls,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		ChallengeService:    service,
		ChallengeRepository: repo,
	}, nil
}
