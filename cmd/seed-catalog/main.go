// Command seed-catalog publishes the games and weights text files to Redis so
// bots started with CHALLENGE_SOURCE=redis share one catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/challenge-bot-discord/internal/config"
	"github.com/KirkDiggler/challenge-bot-discord/internal/loader"
	"github.com/KirkDiggler/challenge-bot-discord/internal/repositories/challenges"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadChallenge()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gamesPath := flag.String("games", cfg.Challenge.GamesFile, "games file")
	weightsPath := flag.String("weights", cfg.Challenge.WeightsFile, "weights file")
	redisURL := flag.String("redis", cfg.Redis.URL, "Redis URL")
	flag.Parse()

	if *redisURL == "" {
		*redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(*redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	src := &loader.FileSource{GamesPath: *gamesPath, WeightsPath: *weightsPath}
	table, err := loader.Publish(ctx, src, challenges.NewRedis(client))
	if err != nil {
		log.Printf("Failed to publish catalog: %v", err)
		os.Exit(1)
	}

	fmt.Printf("Published %d games and %d weights to %s\n", table.Catalog.Len(), len(table.Weights), *redisURL)
}
