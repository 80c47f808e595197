package uuid_test

import (
	"testing"

	"github.com/KirkDiggler/challenge-bot-discord/internal/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	a, b := gen.New(), gen.New()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestShort(t *testing.T) {
	assert.Equal(t, "1b4e28ba", uuid.Short("1b4e28ba-2fa1-11d2-883f-0016d3cca427"))
	assert.Equal(t, "roll-1", uuid.Short("roll-1"))
}
