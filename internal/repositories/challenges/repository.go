package challenges

//go:generate mockgen -destination=mock/mock_repository.go -package=mockchallenges -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
)

// Repository stores the game catalog and weight table so several bot
// instances can share one source of truth
type Repository interface {
	// SaveTable replaces the stored catalog and weights
	SaveTable(ctx context.Context, table *challenge.Table) error

	// GetTable returns the stored catalog and weights
	GetTable(ctx context.Context) (*challenge.Table, error)
}
