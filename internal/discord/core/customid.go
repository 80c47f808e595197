package core

import (
	"strings"

	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
)

const (
	customIDSep = ":"

	// MaxCustomIDLength is Discord's limit for component custom IDs
	MaxCustomIDLength = 100
)

// CustomID routes a component click back to its handler.
// The wire form is domain:action, followed by :target and any args.
type CustomID struct {
	Domain string
	Action string
	Target string
	Args   []string
}

func (c CustomID) parts() []string {
	parts := []string{c.Domain, c.Action}
	if c.Target == "" && len(c.Args) == 0 {
		return parts
	}
	return append(append(parts, c.Target), c.Args...)
}

// Encode returns the wire form
func (c CustomID) Encode() (string, error) {
	parts := c.parts()
	for _, part := range parts {
		if strings.Contains(part, customIDSep) {
			return "", cberr.InvalidArgumentf("custom ID part %q contains %q", part, customIDSep)
		}
	}

	encoded := strings.Join(parts, customIDSep)
	if len(encoded) > MaxCustomIDLength {
		return "", cberr.InvalidArgumentf("custom ID is %d characters, Discord allows %d", len(encoded), MaxCustomIDLength)
	}
	return encoded, nil
}

// ParseCustomID reverses Encode
func ParseCustomID(raw string) (CustomID, error) {
	parts := strings.Split(raw, customIDSep)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return CustomID{}, cberr.InvalidArgumentf("custom ID %q is not domain:action", raw)
	}

	id := CustomID{Domain: parts[0], Action: parts[1]}
	if len(parts) > 2 {
		id.Target = parts[2]
		id.Args = parts[3:]
	}
	return id, nil
}

// CustomIDBuilder encodes IDs for a single domain
type CustomIDBuilder struct {
	domain string
}

func NewCustomIDBuilder(domain string) *CustomIDBuilder {
	return &CustomIDBuilder{domain: domain}
}

// Button encodes the ID of a button. The parts come from our own handlers,
// so an ID that cannot be encoded is a programming error and panics.
func (b *CustomIDBuilder) Button(action, target string, args ...string) string {
	encoded, err := CustomID{Domain: b.domain, Action: action, Target: target, Args: args}.Encode()
	if err != nil {
		panic(err)
	}
	return encoded
}
