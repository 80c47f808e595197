package challenge_test

import (
	"testing"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_SingleFullWeight(t *testing.T) {
	score, err := challenge.Evaluate(
		[]challenge.Pick{{Game: "G", Modifier: "X"}},
		challenge.WeightTable{"X": 100},
	)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, score.Severity, 1e-9)
	assert.Equal(t, 100, score.Percent)
	assert.Equal(t, challenge.TierSuffer, score.Tier)
}

func TestEvaluate_CompoundMultipliesAndAverages(t *testing.T) {
	weights := challenge.WeightTable{"A": 50, "B": 50, "C": 20}
	picks := []challenge.Pick{
		{Game: "Chess", Modifier: "A + B"}, // 0.25
		{Game: "Tetris", Modifier: "C"},    // 0.20
		{Game: "Chess", Modifier: "B"},     // 0.50
	}

	score, err := challenge.Evaluate(picks, weights)

	require.NoError(t, err)
	assert.InDelta(t, 0.95/3, score.Severity, 1e-9)
	assert.Equal(t, 31, score.Percent)
	assert.Equal(t, challenge.TierSpared, score.Tier)
}

func TestEvaluate_EmptyIsNotApplicable(t *testing.T) {
	score, err := challenge.Evaluate(nil, challenge.WeightTable{"X": 100})

	require.Error(t, err)
	assert.Nil(t, score)
	assert.True(t, cberr.IsNotApplicable(err))

	_, err = challenge.Evaluate([]challenge.Pick{}, challenge.WeightTable{})
	assert.True(t, cberr.IsNotApplicable(err))
}

func TestEvaluate_UnknownModifier(t *testing.T) {
	_, err := challenge.Evaluate(
		[]challenge.Pick{{Game: "G", Modifier: "X + Missing"}},
		challenge.WeightTable{"X": 100},
	)

	require.Error(t, err)
	assert.True(t, cberr.IsConfiguration(err))
}

func TestSeverity(t *testing.T) {
	weights := challenge.WeightTable{"A": 50, "B": 40}

	single, err := challenge.Severity(challenge.Pick{Modifier: "A"}, weights)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, single, 1e-9)

	compound, err := challenge.Severity(challenge.Pick{Modifier: challenge.JoinModifiers("A", "B")}, weights)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, compound, 1e-9)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		severity float64
		want     challenge.Tier
	}{
		{severity: 0, want: challenge.TierSpared},
		{severity: 0.399, want: challenge.TierSpared},
		{severity: 0.4, want: challenge.TierTested},
		{severity: 0.699, want: challenge.TierTested},
		{severity: 0.7, want: challenge.TierPunished},
		{severity: 0.899, want: challenge.TierPunished},
		{severity: 0.9, want: challenge.TierSuffer},
		{severity: 2.5, want: challenge.TierSuffer},
	}

	for _, tt := range tests {
		got := challenge.TierFor(tt.severity)
		assert.Equal(t, tt.want, got, "severity %v", tt.severity)
		assert.NotEmpty(t, got.Message())
	}
}
