package challenges_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
	"github.com/KirkDiggler/challenge-bot-discord/internal/repositories/challenges"
	"github.com/KirkDiggler/challenge-bot-discord/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := challenges.NewInMemoryRepository()

	_, err := repo.GetTable(ctx)
	assert.True(t, cberr.IsNotFound(err))

	assert.True(t, cberr.IsInvalidArgument(repo.SaveTable(ctx, nil)))

	catalog := testutils.CreateTestCatalog(t, testutils.Game("Chess", "Blindfold"))
	weights := challenge.WeightTable{"Blindfold": 50}
	require.NoError(t, repo.SaveTable(ctx, &challenge.Table{Catalog: catalog, Weights: weights}))

	// Later changes to the saved values do not leak into the repository
	require.NoError(t, catalog.Add("Tetris", []string{"NoHold"}))
	weights["Blindfold"] = 1

	table, err := repo.GetTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chess"}, table.Catalog.Games())
	assert.Equal(t, 50, table.Weights["Blindfold"])
}
