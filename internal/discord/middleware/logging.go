package middleware

import (
	"log"
	"time"

	"github.com/KirkDiggler/challenge-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/challenge-bot-discord/internal/uuid"
)

// LoggingMiddleware logs each interaction and how long it took
func LoggingMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			log.Printf("[Discord] %s, User: %s, Guild: %s, Request: %s",
				ctx.Describe(),
				ctx.UserID,
				ctx.GuildID,
				ctx.RequestID(),
			)

			start := time.Now()
			result, err := next.Handle(ctx)

			log.Printf("[Discord] %s completed in %v", ctx.Describe(), time.Since(start))
			return result, err
		})
	}
}

// RequestIDMiddleware adds a unique request ID to the context
func RequestIDMiddleware(gen uuid.Generator) core.Middleware {
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			ctx.SetRequestID(gen.New())
			return next.Handle(ctx)
		})
	}
}
