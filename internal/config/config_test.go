package config_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/challenge-bot-discord/internal/config"
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDiscord(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
}

func TestLoad_Defaults(t *testing.T) {
	setDiscord(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "token", cfg.Discord.Token)
	assert.Equal(t, "data/games.txt", cfg.Challenge.GamesFile)
	assert.Equal(t, "data/weights.txt", cfg.Challenge.WeightsFile)
	assert.Equal(t, config.SourceFile, cfg.Challenge.Source)
	assert.Equal(t, 20, cfg.Challenge.MaxRolls)
	assert.Equal(t, 750*time.Millisecond, cfg.Challenge.RevealInterval)
	assert.Equal(t, 10, cfg.Challenge.RateLimit)
	assert.Equal(t, time.Minute, cfg.Challenge.RateWindow)
}

func TestLoad_Overrides(t *testing.T) {
	setDiscord(t)
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CHALLENGE_SOURCE", "redis")
	t.Setenv("CHALLENGE_MAX_ROLLS", "5")
	t.Setenv("CHALLENGE_REVEAL_INTERVAL", "1s")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, config.SourceRedis, cfg.Challenge.Source)
	assert.Equal(t, 5, cfg.Challenge.MaxRolls)
	assert.Equal(t, time.Second, cfg.Challenge.RevealInterval)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing token", env: map[string]string{"DISCORD_TOKEN": "", "DISCORD_APP_ID": "app"}},
		{name: "missing app id", env: map[string]string{"DISCORD_TOKEN": "token", "DISCORD_APP_ID": ""}},
		{name: "unknown source", env: map[string]string{"CHALLENGE_SOURCE": "ftp"}},
		{name: "zero max rolls", env: map[string]string{"CHALLENGE_MAX_ROLLS": "0"}},
		{name: "bad duration", env: map[string]string{"CHALLENGE_REVEAL_INTERVAL": "soon"}},
		{name: "zero rate window", env: map[string]string{"CHALLENGE_RATE_WINDOW": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setDiscord(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			require.Error(t, err)
			assert.True(t, cberr.IsConfiguration(err))
		})
	}
}

func TestLoadChallenge_NoDiscordRequired(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "")

	cfg, err := config.LoadChallenge()

	require.NoError(t, err)
	assert.Equal(t, config.SourceFile, cfg.Challenge.Source)
}
