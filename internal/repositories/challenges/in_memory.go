package challenges

import (
	"context"
	"sync"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu    sync.RWMutex
	table *challenge.Table
}

// NewInMemoryRepository creates a new in-memory challenge repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{}
}

func (r *inMemoryRepository) SaveTable(ctx context.Context, table *challenge.Table) error {
	if table == nil || table.Catalog == nil {
		return cberr.InvalidArgument("table cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Copy so callers cannot mutate what we hold
	r.table = copyTable(table)
	return nil
}

func (r *inMemoryRepository) GetTable(ctx context.Context) (*challenge.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.table == nil {
		return nil, cberr.NotFound("no challenge table stored")
	}

	return copyTable(r.table), nil
}

func copyTable(table *challenge.Table) *challenge.Table {
	weights := make(challenge.WeightTable, len(table.Weights))
	for name, w := range table.Weights {
		weights[name] = w
	}
	return &challenge.Table{
		Catalog: table.Catalog.Clone(),
		Weights: weights,
	}
}
