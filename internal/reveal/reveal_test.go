package reveal_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
	"github.com/KirkDiggler/challenge-bot-discord/internal/reveal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	picks := []challenge.Pick{
		{Game: "Chess", Modifier: "Blindfold + Speedrun"},
		{Game: "Tetris", Modifier: "NoHold"},
	}
	score := &challenge.Score{Severity: 0.55, Tier: challenge.TierTested, Percent: 55}

	lines := reveal.Lines(picks, score)

	assert.Equal(t, []string{
		reveal.Header,
		challenge.TierTested.Message(),
		"1. Chess - Blindfold + Speedrun",
		"2. Tetris - NoHold",
		"Maker-laugher percentage is 55%",
	}, lines)
}

func TestFrames(t *testing.T) {
	frames := reveal.Frames([]string{"a", "b", "c"})

	assert.Equal(t, []string{"a", "a\nb", "a\nb\nc"}, frames)
	assert.Empty(t, reveal.Frames(nil))
}

func TestPlay(t *testing.T) {
	var rendered []string

	err := reveal.Play(context.Background(), []string{"a", "a\nb", "a\nb\nc"}, time.Millisecond, func(frame string) error {
		rendered = append(rendered, frame)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a\nb", "a\nb\nc"}, rendered)
}

func TestPlay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var rendered []string
	err := reveal.Play(ctx, []string{"a", "b", "c"}, time.Hour, func(frame string) error {
		rendered = append(rendered, frame)
		cancel()
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"a"}, rendered)
}

func TestPlay_RenderError(t *testing.T) {
	boom := errors.New("edit failed")
	calls := 0

	err := reveal.Play(context.Background(), []string{"a", "b", "c"}, time.Millisecond, func(string) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestTypewrite(t *testing.T) {
	var sb strings.Builder

	require.NoError(t, reveal.Typewrite(context.Background(), &sb, "Götter", 0))
	assert.Equal(t, "Götter", sb.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sb.Reset()
	err := reveal.Typewrite(ctx, &sb, "abc", time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "a", sb.String())
}

func TestPlay_NoInterval(t *testing.T) {
	var rendered []string

	err := reveal.Play(context.Background(), []string{"a", "b"}, 0, func(frame string) error {
		rendered = append(rendered, frame)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rendered)
}
