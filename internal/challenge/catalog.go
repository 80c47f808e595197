package challenge

import (
	"sort"
	"strings"

	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
)

// Catalog maps each game to the modifiers it can be rolled with.
// Games keep the order in which they were added so uniform draws are reproducible
// with a seeded Source.
type Catalog struct {
	games     []string
	modifiers map[string][]string
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		games:     make([]string, 0),
		modifiers: make(map[string][]string),
	}
}

// Add registers a game with its eligible modifiers.
// Duplicate modifiers collapse to their first occurrence. Adding a game twice
// replaces its modifiers but keeps its original position.
func (c *Catalog) Add(game string, modifiers []string) error {
	game = strings.TrimSpace(game)
	if game == "" {
		return cberr.InvalidArgument("game name cannot be empty")
	}
	if len(modifiers) == 0 {
		return cberr.InvalidArgumentf("game %q has no modifiers", game)
	}

	seen := make(map[string]bool, len(modifiers))
	eligible := make([]string, 0, len(modifiers))
	for _, mod := range modifiers {
		mod = strings.TrimSpace(mod)
		if mod == "" {
			return cberr.InvalidArgumentf("game %q has an empty modifier", game)
		}
		if strings.Contains(mod, Separator) {
			return cberr.InvalidArgumentf("modifier %q of game %q contains the separator %q", mod, game, Separator)
		}
		if seen[mod] {
			continue
		}
		seen[mod] = true
		eligible = append(eligible, mod)
	}

	if _, exists := c.modifiers[game]; !exists {
		c.games = append(c.games, game)
	}
	c.modifiers[game] = eligible

	return nil
}

// Games returns the game names in insertion order
func (c *Catalog) Games() []string {
	out := make([]string, len(c.games))
	copy(out, c.games)
	return out
}

// Modifiers returns the eligible modifiers of a game, nil if the game is unknown
func (c *Catalog) Modifiers(game string) []string {
	mods, ok := c.modifiers[game]
	if !ok {
		return nil
	}
	out := make([]string, len(mods))
	copy(out, mods)
	return out
}

// Has reports whether the game is in the catalog
func (c *Catalog) Has(game string) bool {
	_, ok := c.modifiers[game]
	return ok
}

// Len returns the number of games
func (c *Catalog) Len() int {
	return len(c.games)
}

// Clone returns a deep copy of the catalog
func (c *Catalog) Clone() *Catalog {
	clone := NewCatalog()
	clone.games = c.Games()
	for game := range c.modifiers {
		clone.modifiers[game] = c.Modifiers(game)
	}
	return clone
}

// Validate checks that every referenced modifier has a weight and that every
// game has at least one selectable modifier
func (c *Catalog) Validate(weights WeightTable) error {
	if err := weights.Validate(); err != nil {
		return err
	}

	for _, game := range c.games {
		selectable := 0
		for _, mod := range c.modifiers[game] {
			w, ok := weights[mod]
			if !ok {
				return cberr.Configurationf("modifier %q of game %q is missing from the weight table", mod, game).
					WithMeta("game", game).
					WithMeta("modifier", mod)
			}
			if w > 0 {
				selectable++
			}
		}
		if selectable == 0 {
			return cberr.Configurationf("game %q has no modifier with a positive weight", game).
				WithMeta("game", game)
		}
	}

	return nil
}

// WeightTable maps modifier names to their weight, a percentage-like scale
type WeightTable map[string]int

// Lookup returns the weight of a modifier
func (w WeightTable) Lookup(modifier string) (int, error) {
	weight, ok := w[modifier]
	if !ok {
		return 0, cberr.Configurationf("modifier %q is missing from the weight table", modifier).
			WithMeta("modifier", modifier)
	}
	return weight, nil
}

// Candidates builds the ordered sampler input for the given modifiers
func (w WeightTable) Candidates(modifiers []string) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(modifiers))
	for _, mod := range modifiers {
		weight, err := w.Lookup(mod)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{Name: mod, Weight: weight})
	}
	return candidates, nil
}

// Names returns the modifier names sorted alphabetically
func (w WeightTable) Names() []string {
	names := make([]string, 0, len(w))
	for name := range w {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate rejects negative weights
func (w WeightTable) Validate() error {
	for _, name := range w.Names() {
		if w[name] < 0 {
			return cberr.Configurationf("modifier %q has negative weight %d", name, w[name]).
				WithMeta("modifier", name)
		}
	}
	return nil
}

// Table bundles the catalog and weight table loaded at startup
type Table struct {
	Catalog *Catalog
	Weights WeightTable
}

// Validate checks the catalog against the weight table
func (t *Table) Validate() error {
	if t == nil || t.Catalog == nil {
		return cberr.Configuration("challenge table has no catalog")
	}
	if t.Weights == nil {
		return cberr.Configuration("challenge table has no weights")
	}
	return t.Catalog.Validate(t.Weights)
}
