package loader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
)

// ParseGames reads the games format, one game per line:
//
//	GameName, [mod1, mod2, ...]
//
// Blank lines are ignored. Brackets and surrounding whitespace are stripped.
func ParseGames(r io.Reader) (*challenge.Catalog, error) {
	catalog := challenge.NewCatalog()

	err := eachLine(r, func(lineNo int, line string) error {
		game, mods, found := strings.Cut(line, ",")
		if !found {
			return cberr.InvalidArgumentf("games line %d: expected \"Game, [modifiers]\"", lineNo)
		}

		mods = strings.NewReplacer("[", "", "]", "").Replace(mods)
		var modifiers []string
		for _, mod := range strings.Split(mods, ",") {
			if mod = strings.TrimSpace(mod); mod != "" {
				modifiers = append(modifiers, mod)
			}
		}

		if err := catalog.Add(game, modifiers); err != nil {
			return cberr.Wrapf(err, "games line %d", lineNo)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}

// ParseWeights reads the weights format, one modifier per line:
//
//	ModifierName, integerWeight
//
// Blank lines are ignored. A modifier listed twice keeps its last weight.
func ParseWeights(r io.Reader) (challenge.WeightTable, error) {
	weights := make(challenge.WeightTable)

	err := eachLine(r, func(lineNo int, line string) error {
		name, raw, found := strings.Cut(line, ",")
		if !found {
			return cberr.InvalidArgumentf("weights line %d: expected \"Modifier, weight\"", lineNo)
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return cberr.InvalidArgumentf("weights line %d: modifier name cannot be empty", lineNo)
		}

		weight, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return cberr.InvalidArgumentf("weights line %d: weight %q is not an integer", lineNo, strings.TrimSpace(raw))
		}
		if weight < 0 {
			return cberr.InvalidArgumentf("weights line %d: weight %d is negative", lineNo, weight)
		}

		weights[name] = weight
		return nil
	})
	if err != nil {
		return nil, err
	}

	return weights, nil
}

func eachLine(r io.Reader, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return cberr.Wrap(err, "failed to read input")
	}

	return nil
}
