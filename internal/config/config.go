package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
)

// Catalog sources
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Discord   DiscordConfig
	Redis     RedisConfig
	Challenge ChallengeConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL"` // Optional: in-memory storage when empty
}

// ChallengeConfig controls where the catalog comes from and how rolls are served
type ChallengeConfig struct {
	GamesFile      string        `env:"CHALLENGE_GAMES_FILE" envDefault:"data/games.txt"`
	WeightsFile    string        `env:"CHALLENGE_WEIGHTS_FILE" envDefault:"data/weights.txt"`
	Source         string        `env:"CHALLENGE_SOURCE" envDefault:"file"`
	MaxRolls       int           `env:"CHALLENGE_MAX_ROLLS" envDefault:"20"`
	RevealInterval time.Duration `env:"CHALLENGE_REVEAL_INTERVAL" envDefault:"750ms"`
	RateLimit      int           `env:"CHALLENGE_RATE_LIMIT" envDefault:"10"`
	RateWindow     time.Duration `env:"CHALLENGE_RATE_WINDOW" envDefault:"1m"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg, err := LoadChallenge()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, cberr.Configuration("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, cberr.Configuration("DISCORD_APP_ID is required")
	}

	return cfg, nil
}

// LoadChallenge loads configuration without requiring Discord credentials,
// for tools that never connect to Discord
func LoadChallenge() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, cberr.WrapWithCode(err, cberr.CodeConfiguration, "failed to parse environment")
	}

	if err := cfg.Challenge.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the challenge settings
func (c *ChallengeConfig) Validate() error {
	switch c.Source {
	case SourceFile:
		if c.GamesFile == "" || c.WeightsFile == "" {
			return cberr.Configuration("CHALLENGE_GAMES_FILE and CHALLENGE_WEIGHTS_FILE are required for the file source")
		}
	case SourceRedis:
	default:
		return cberr.Configurationf("CHALLENGE_SOURCE must be %q or %q, got %q", SourceFile, SourceRedis, c.Source)
	}

	if c.MaxRolls < 1 {
		return cberr.Configurationf("CHALLENGE_MAX_ROLLS must be positive, got %d", c.MaxRolls)
	}
	if c.RevealInterval < 0 {
		return cberr.Configuration("CHALLENGE_REVEAL_INTERVAL cannot be negative")
	}
	if c.RateLimit < 0 || c.RateWindow <= 0 {
		return cberr.Configuration("CHALLENGE_RATE_LIMIT cannot be negative and CHALLENGE_RATE_WINDOW must be positive")
	}

	return nil
}
