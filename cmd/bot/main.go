package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/challenge-bot-discord/internal/config"
	"github.com/KirkDiggler/challenge-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/challenge-bot-discord/internal/discord/middleware"
	"github.com/KirkDiggler/challenge-bot-discord/internal/discord/routers"
	"github.com/KirkDiggler/challenge-bot-discord/internal/services"
	"github.com/KirkDiggler/challenge-bot-discord/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	redisClient := connectRedis(cfg.Redis.URL)

	providerConfig := &services.ProviderConfig{
		Challenge: cfg.Challenge,
	}
	if redisClient != nil {
		providerConfig.RedisClient = redisClient
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	provider, err := services.NewProvider(loadCtx, providerConfig)
	cancel()
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	runCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Rate limits are shared across instances when Redis is available
	var rateStore middleware.RateLimitStore
	if redisClient != nil {
		rateStore = middleware.NewRedisRateLimitStore(redisClient)
	} else {
		memStore := middleware.NewMemoryRateLimitStore()
		go memStore.Run(runCtx, cfg.Challenge.RateWindow)
		rateStore = memStore
	}

	pipeline := core.NewPipeline()
	pipeline.Use(
		middleware.RecoveryMiddleware(),
		middleware.RequestIDMiddleware(uuid.NewGoogleUUIDGenerator()),
		middleware.LoggingMiddleware(),
		middleware.ErrorMiddleware(),
	)

	if _, err := routers.NewChallengeRouter(&routers.ChallengeRouterConfig{
		Pipeline:       pipeline,
		Service:        provider.ChallengeService,
		RevealInterval: cfg.Challenge.RevealInterval,
		RollMiddleware: []core.Middleware{
			middleware.UserRateLimitMiddleware(cfg.Challenge.RateLimit, cfg.Challenge.RateWindow, rateStore),
		},
	}); err != nil {
		log.Fatalf("Failed to create challenge router: %v", err)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	dg.AddHandler(pipeline.HandleInteraction)

	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	if err := routers.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID, cfg.Challenge.MaxRolls); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")
	stop()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// connectRedis returns nil when no URL is set or Redis is unreachable
func connectRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("No REDIS_URL found, using in-memory storage")
		return nil
	}

	log.Printf("Connecting to Redis at: %s", redisURL)

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory storage")
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory storage")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}
