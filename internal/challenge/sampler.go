package challenge

import (
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
)

// Candidate is one weighted option for WeightedChoice
type Candidate struct {
	Name   string
	Weight int
}

// WeightedChoice draws one candidate with probability weight/total.
//
// Candidates are walked in the order given; the first one whose cumulative
// upper bound reaches the draw (upto+w >= r) wins. Zero weights are never
// chosen. If rounding leaves the walk without a match, the last positive-weight
// candidate is returned.
func WeightedChoice(src Source, candidates []Candidate) (string, error) {
	if len(candidates) == 0 {
		return "", cberr.InvalidArgument("cannot choose from an empty candidate set")
	}

	total := 0
	last := -1
	for i, c := range candidates {
		if c.Weight < 0 {
			return "", cberr.InvalidArgumentf("candidate %q has negative weight %d", c.Name, c.Weight)
		}
		if c.Weight > 0 {
			last = i
		}
		total += c.Weight
	}

	if total == 0 {
		return "", cberr.InvalidArgument("cannot choose from candidates with zero total weight")
	}

	r := src.Float64() * float64(total)
	upto := 0.0
	for _, c := range candidates {
		if c.Weight == 0 {
			continue
		}
		w := float64(c.Weight)
		if upto+w >= r {
			return c.Name, nil
		}
		upto += w
	}

	return candidates[last].Name, nil
}

// selectable drops zero-weight candidates
func selectable(candidates []Candidate) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Weight > 0 {
			out = append(out, c)
		}
	}
	return out
}

func without(candidates []Candidate, name string) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Name != name {
			out = append(out, c)
		}
	}
	return out
}
