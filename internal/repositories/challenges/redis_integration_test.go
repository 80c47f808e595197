//go:build integration
// +build integration

package challenges_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
	"github.com/KirkDiggler/challenge-bot-discord/internal/repositories/challenges"
	"github.com/KirkDiggler/challenge-bot-discord/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := challenges.NewRedis(testutils.CreateTestRedisClient(t))

	catalog := challenge.NewCatalog()
	require.NoError(t, catalog.Add("Tetris", []string{"NoHold"}))
	require.NoError(t, catalog.Add("Chess", []string{"Blindfold", "Speedrun"}))
	weights := challenge.WeightTable{"Blindfold": 50, "Speedrun": 30, "NoHold": 80}

	require.NoError(t, repo.SaveTable(ctx, &challenge.Table{Catalog: catalog, Weights: weights}))

	table, err := repo.GetTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chess", "Tetris"}, table.Catalog.Games())
	assert.Equal(t, weights, table.Weights)

	// Saving again replaces rather than merges
	smaller := challenge.NewCatalog()
	require.NoError(t, smaller.Add("Pong", []string{"Mirror"}))
	require.NoError(t, repo.SaveTable(ctx, &challenge.Table{Catalog: smaller, Weights: challenge.WeightTable{"Mirror": 10}}))

	table, err = repo.GetTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pong"}, table.Catalog.Games())
	assert.Equal(t, challenge.WeightTable{"Mirror": 10}, table.Weights)
}
