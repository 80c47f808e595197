package challenge

import "strings"

// Separator joins the two modifiers of a compound pick
const Separator = " + "

// Pick is one rolled challenge: a game and the modifier to play it with.
// Modifier is either a single modifier name or two names joined by Separator.
type Pick struct {
	Game     string `json:"game"`
	Modifier string `json:"modifier"`
}

// Components splits the modifier into its one or two modifier names
func (p Pick) Components() []string {
	return strings.Split(p.Modifier, Separator)
}

// IsCompound reports whether the pick combines two modifiers
func (p Pick) IsCompound() bool {
	return strings.Contains(p.Modifier, Separator)
}

// JoinModifiers formats a compound modifier, first draw first
func JoinModifiers(first, second string) string {
	return first + Separator + second
}
