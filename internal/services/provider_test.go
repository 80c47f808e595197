package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/challenge-bot-discord/internal/config"
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
	"github.com/KirkDiggler/challenge-bot-discord/internal/repositories/challenges"
	"github.com/KirkDiggler/challenge-bot-discord/internal/services"
)

func TestNewProvider_FileSource(t *testing.T) {
	dir := t.TempDir()
	games := filepath.Join(dir, "games.txt")
	weights := filepath.Join(dir, "weights.txt")
	require.NoError(t, os.WriteFile(games, []byte("Chess, [Blindfold]\n"), 0o600))
	require.NoError(t, os.WriteFile(weights, []byte("Blindfold, 50\n"), 0o600))

	provider, err := services.NewProvider(context.Background(), &services.ProviderConfig{
		Challenge: config.ChallengeConfig{
			Source:      config.SourceFile,
			GamesFile:   games,
			WeightsFile: weights,
			MaxRolls:    3,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, provider.ChallengeService.MaxRolls())
	assert.Equal(t, []string{"Chess"}, provider.ChallengeService.Catalog().Games())

	result, err := provider.ChallengeService.Roll(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, result.Picks, 2)
}

func TestNewProvider_RedisSource(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.MatchExpectationsInOrder(false)
	mock.ExpectHGetAll(challenges.GamesKey).SetVal(map[string]string{"Chess": `["Blindfold"]`})
	mock.ExpectHGetAll(challenges.WeightsKey).SetVal(map[string]string{"Blindfold": "50"})

	provider, err := services.NewProvider(context.Background(), &services.ProviderConfig{
		Challenge:   config.ChallengeConfig{Source: config.SourceRedis, MaxRolls: 20},
		RedisClient: client,
	})

	require.NoError(t, err)
	assert.True(t, provider.ChallengeService.Catalog().Has("Chess"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewProvider_Errors(t *testing.T) {
	_, err := services.NewProvider(context.Background(), nil)
	assert.True(t, cberr.IsInvalidArgument(err))

	_, err = services.NewProvider(context.Background(), &services.ProviderConfig{
		Challenge: config.ChallengeConfig{Source: config.SourceRedis},
	})
	assert.True(t, cberr.IsConfiguration(err))

	_, err = services.NewProvider(context.Background(), &services.ProviderConfig{
		Challenge: config.ChallengeConfig{
			Source:      config.SourceFile,
			GamesFile:   filepath.Join(t.TempDir(), "missing.txt"),
			WeightsFile: filepath.Join(t.TempDir(), "missing.txt"),
		},
	})
	assert.True(t, cberr.IsConfiguration(err))
}
