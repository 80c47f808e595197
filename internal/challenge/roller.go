package challenge

import (
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
)

// CompoundChance is the probability that a pick combines two modifiers
const CompoundChance = 0.25

// Roll produces count picks in draw order.
//
// Each pick draws a game uniformly (not weighted by modifier count), then a
// compound check, then one or two weighted modifier draws. A game with fewer
// than two selectable modifiers always gets a single modifier.
func Roll(src Source, catalog *Catalog, weights WeightTable, count int) ([]Pick, error) {
	if count < 0 {
		return nil, cberr.InvalidArgumentf("roll count must not be negative, got %d", count)
	}

	picks := make([]Pick, 0, count)
	if count == 0 {
		return picks, nil
	}

	if catalog == nil || catalog.Len() == 0 {
		return nil, cberr.InvalidArgument("cannot roll from an empty catalog")
	}

	games := catalog.Games()
	for len(picks) < count {
		game := games[src.Intn(len(games))]

		modifier, err := rollModifier(src, catalog.Modifiers(game), weights)
		if err != nil {
			return nil, cberr.Wrapf(err, "failed to roll modifier for %s", game).
				WithMeta("game", game)
		}

		picks = append(picks, Pick{Game: game, Modifier: modifier})
	}

	return picks, nil
}

func rollModifier(src Source, modifiers []string, weights WeightTable) (string, error) {
	candidates, err := weights.Candidates(modifiers)
	if err != nil {
		return "", err
	}
	candidates = selectable(candidates)

	compound := src.Float64() < CompoundChance && len(candidates) > 1

	first, err := WeightedChoice(src, candidates)
	if err != nil {
		return "", err
	}
	if !compound {
		return first, nil
	}

	second, err := WeightedChoice(src, without(candidates, first))
	if err != nil {
		return "", err
	}

	return JoinModifiers(first, second), nil
}
