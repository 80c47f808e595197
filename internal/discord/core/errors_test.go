package core

import (
	"errors"
	"testing"

	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "handler error passes through",
			err:      NewValidationError("bad count"),
			wantCode: ErrorCodeBadRequest,
			wantMsg:  "bad count",
		},
		{
			name:     "invalid argument shows its message",
			err:      cberr.InvalidArgumentf("roll count must be between 1 and %d, got %d", 20, 25),
			wantCode: ErrorCodeBadRequest,
			wantMsg:  "roll count must be between 1 and 20, got 25",
		},
		{
			name:     "configuration is hidden",
			err:      cberr.Configuration("modifier missing"),
			wantCode: ErrorCodeInternal,
		},
		{
			name:     "unavailable",
			err:      cberr.WrapWithCode(errors.New("dial tcp"), cberr.CodeUnavailable, "redis"),
			wantCode: ErrorCodeUnavailable,
		},
		{
			name:     "foreign error is internal",
			err:      errors.New("boom"),
			wantCode: ErrorCodeInternal,
			wantMsg:  "An internal error occurred. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.NotEmpty(t, got.UserMessage)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, got.UserMessage)
			}
			assert.NotContains(t, got.UserMessage, "dial tcp")
		})
	}
}
