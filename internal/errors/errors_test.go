package errors_test

import (
	"errors"
	"fmt"
	"testing"

	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := cberr.Configurationf("modifier %q has no weight", "Blindfold").
		WithMeta("modifier", "Blindfold")

	wrapped := cberr.Wrap(base, "failed to roll")

	require.NotNil(t, wrapped)
	assert.Equal(t, cberr.CodeConfiguration, wrapped.Code)
	assert.True(t, cberr.IsConfiguration(wrapped))
	assert.Equal(t, "Blindfold", cberr.GetMeta(wrapped)["modifier"])
	assert.Equal(t, `failed to roll: modifier "Blindfold" has no weight`, wrapped.Error())
}

func TestWrap_ForeignError(t *testing.T) {
	wrapped := cberr.Wrap(errors.New("boom"), "loading games")

	assert.Equal(t, cberr.CodeUnknown, wrapped.Code)
	assert.Equal(t, cberr.CodeUnknown, cberr.GetCode(wrapped))
	assert.Nil(t, cberr.Wrap(nil, "nothing"))
	assert.Nil(t, cberr.Wrapf(nil, "nothing %d", 1))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := cberr.WrapWithCode(errors.New("dial tcp"), cberr.CodeUnavailable, "redis down")

	assert.True(t, cberr.Is(wrapped, cberr.CodeUnavailable))
	assert.Nil(t, cberr.WrapWithCode(nil, cberr.CodeInternal, "nothing"))
}

func TestPredicates_ThroughStdlibWrapping(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "invalid argument", err: cberr.InvalidArgument("count must be positive"), check: cberr.IsInvalidArgument},
		{name: "not applicable", err: cberr.NotApplicable("no picks"), check: cberr.IsNotApplicable},
		{name: "not found", err: cberr.NotFoundf("game %s", "Chess"), check: cberr.IsNotFound},
		{name: "internal", err: cberr.Internalf("bad state %d", 3), check: cberr.IsInternal},
		{name: "unavailable", err: cberr.WrapWithCode(errors.New("dial tcp"), cberr.CodeUnavailable, "redis down"), check: cberr.IsUnavailable},
		{name: "configuration", err: cberr.Configuration("missing weight"), check: cberr.IsConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(fmt.Errorf("outer: %w", tt.err)))
			assert.False(t, tt.check(errors.New("plain")))
		})
	}
}
