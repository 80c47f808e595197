package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
)

// CreateTestCatalog builds a catalog from game/modifier pairs, keeping the
// order in which games are listed
func CreateTestCatalog(t *testing.T, games ...GameEntry) *challenge.Catalog {
	t.Helper()

	catalog := challenge.NewCatalog()
	for _, g := range games {
		require.NoError(t, catalog.Add(g.Name, g.Modifiers))
	}
	return catalog
}

// GameEntry is one catalog line
type GameEntry struct {
	Name      string
	Modifiers []string
}

// Game is shorthand for a GameEntry
func Game(name string, modifiers ...string) GameEntry {
	return GameEntry{Name: name, Modifiers: modifiers}
}

// CreateTestTable returns a small valid table shared across package tests:
// Chess with two modifiers and Tetris with one
func CreateTestTable(t *testing.T) *challenge.Table {
	t.Helper()

	return &challenge.Table{
		Catalog: CreateTestCatalog(t,
			Game("Chess", "Blindfold", "Speedrun"),
			Game("Tetris", "NoHold"),
		),
		Weights: challenge.WeightTable{"Blindfold": 50, "Speedrun": 30, "NoHold": 80},
	}
}
