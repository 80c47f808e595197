package middleware

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/challenge-bot-discord/internal/discord/core"
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
)

// ErrorMiddleware turns handler errors into ephemeral replies and logs them
func ErrorMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			logError(ctx, err)

			handlerErr := core.FromError(err)
			return core.Reply(core.Notice(handlerErr.UserMessage)), nil
		})
	}
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Discord] Panic recovered in %s: %v", ctx.Describe(), r)

					err = nil
					result = core.Reply(core.Notice("An unexpected error occurred. Please try again later."))
				}
			}()

			return next.Handle(ctx)
		})
	}
}

func logError(ctx *core.InteractionContext, err error) {
	meta := fmt.Sprintf("user=%s guild=%s", ctx.UserID, ctx.GuildID)
	if id := ctx.RequestID(); id != "" {
		meta += " request=" + id
	}
	if m := cberr.GetMeta(err); len(m) > 0 {
		meta += fmt.Sprintf(" meta=%v", m)
	}

	log.Printf("[Discord] Error in %s (%s): [%s] %v", ctx.Describe(), meta, cberr.GetCode(err), err)
}
