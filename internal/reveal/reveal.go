// Package reveal turns a scored roll into text and plays it back one step at
// a time, either as Discord message edits or characters on a terminal.
package reveal

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
)

// Header opens every revealed roll
const Header = "Your Win Challenge:"

// Lines renders a roll in reveal order: header, tier message, numbered picks,
// then the percentage
func Lines(picks []challenge.Pick, score *challenge.Score) []string {
	lines := make([]string, 0, len(picks)+3)
	lines = append(lines, Header)
	if score != nil {
		lines = append(lines, score.Tier.Message())
	}
	for i, pick := range picks {
		lines = append(lines, PickLine(i+1, pick))
	}
	if score != nil {
		lines = append(lines, PercentLine(score))
	}
	return lines
}

// PickLine formats one numbered pick
func PickLine(n int, pick challenge.Pick) string {
	return fmt.Sprintf("%d. %s - %s", n, pick.Game, pick.Modifier)
}

// PercentLine formats the closing percentage
func PercentLine(score *challenge.Score) string {
	return fmt.Sprintf("Maker-laugher percentage is %d%%", score.Percent)
}

// Frames returns cumulative snapshots, each showing one more line than the
// last. The final frame is the full text.
func Frames(lines []string) []string {
	frames := make([]string, 0, len(lines))
	for i := range lines {
		frames = append(frames, strings.Join(lines[:i+1], "\n"))
	}
	return frames
}

// Play hands each frame to render, waiting interval between frames.
// The first frame is rendered immediately and a non-positive interval renders
// all frames without waiting. Play stops at the first render error or when ctx
// is done.
func Play(ctx context.Context, frames []string, interval time.Duration, render func(frame string) error) error {
	if len(frames) == 0 {
		return nil
	}

	if err := render(frames[0]); err != nil {
		return err
	}
	if len(frames) == 1 {
		return nil
	}

	if interval <= 0 {
		for _, frame := range frames[1:] {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := render(frame); err != nil {
				return err
			}
		}
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for _, frame := range frames[1:] {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := render(frame); err != nil {
				return err
			}
		}
	}

	return nil
}

// Typewrite writes text to w one rune at a time
func Typewrite(ctx context.Context, w io.Writer, text string, delay time.Duration) error {
	for _, r := range text {
		if _, err := io.WriteString(w, string(r)); err != nil {
			return err
		}
		if delay <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil
}
