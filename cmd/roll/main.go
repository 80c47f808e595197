// Command roll rolls challenges in the terminal with a typewriter reveal
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
	"github.com/KirkDiggler/challenge-bot-discord/internal/config"
	"github.com/KirkDiggler/challenge-bot-discord/internal/loader"
	"github.com/KirkDiggler/challenge-bot-discord/internal/reveal"
	challengeService "github.com/KirkDiggler/challenge-bot-discord/internal/services/challenge"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadChallenge()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	count := flag.Int("n", 1, "number of games to roll")
	seed := flag.Int64("seed", 0, "seed for a reproducible roll (0 picks one)")
	delay := flag.Duration("delay", 30*time.Millisecond, "delay between characters")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	table, err := loader.Load(ctx, &loader.FileSource{
		GamesPath:   cfg.Challenge.GamesFile,
		WeightsPath: cfg.Challenge.WeightsFile,
	})
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	var src challenge.Source
	if *seed != 0 {
		src = challenge.NewSeededSource(*seed)
	}

	svc, err := challengeService.NewService(&challengeService.ServiceConfig{
		Table:    table,
		Source:   src,
		MaxRolls: cfg.Challenge.MaxRolls,
	})
	if err != nil {
		log.Fatalf("Failed to create service: %v", err)
	}

	result, err := svc.Roll(ctx, *count)
	if err != nil {
		log.Fatalf("Failed to roll: %v", err)
	}

	for _, line := range reveal.Lines(result.Picks, result.Score) {
		if err := reveal.Typewrite(ctx, os.Stdout, line+"\n", *delay); err != nil {
			fmt.Println()
			return
		}
	}
}
