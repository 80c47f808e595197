package core

import (
	"errors"
	"testing"

	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockHandler for testing
type MockHandler struct {
	canHandle bool
	result    *HandlerResult
	err       error
	called    bool
}

func (m *MockHandler) CanHandle(ctx *InteractionContext) bool {
	return m.canHandle
}

func (m *MockHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	m.called = true
	return m.result, m.err
}

func TestPipeline_Register(t *testing.T) {
	pipeline := NewPipeline()
	pipeline.Register(&MockHandler{}, &MockHandler{})

	assert.Equal(t, 2, pipeline.HandlerCount())
}

func TestPipeline_Dispatch_FirstMatchOnly(t *testing.T) {
	pipeline := NewPipeline()
	skipped := &MockHandler{canHandle: false}
	first := &MockHandler{canHandle: true, result: &HandlerResult{Response: Text("first")}}
	second := &MockHandler{canHandle: true, result: &HandlerResult{Response: Text("second")}}
	pipeline.Register(skipped, first, second)

	responder := NewFakeResponder()
	err := pipeline.Dispatch(NewTestContext(Command("challenge", "roll")), responder)

	require.NoError(t, err)
	assert.False(t, skipped.called)
	assert.True(t, first.called)
	assert.False(t, second.called)
	require.Len(t, responder.Sent, 1)
	assert.Equal(t, "first", responder.Sent[0].Content)
}

func TestPipeline_Dispatch_DeferredResultIsEdited(t *testing.T) {
	pipeline := NewPipeline()
	pipeline.Register(HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
		require.NoError(t, ctx.Responder().Defer(false))
		return &HandlerResult{Response: Text("done"), Deferred: true}, nil
	}))

	responder := NewFakeResponder()
	require.NoError(t, pipeline.Dispatch(NewTestContext(Command("challenge", "")), responder))

	assert.Equal(t, []bool{false}, responder.Defers)
	assert.Empty(t, responder.Sent)
	require.Len(t, responder.Edited, 1)
	assert.Equal(t, "done", responder.Edited[0].Content)
}

func TestPipeline_Dispatch_ErrorHandler(t *testing.T) {
	pipeline := NewPipeline()
	pipeline.Register(&MockHandler{canHandle: true, err: cberr.InvalidArgument("count must be positive")})

	responder := NewFakeResponder()
	require.NoError(t, pipeline.Dispatch(NewTestContext(Command("challenge", "")), responder))

	require.Len(t, responder.Sent, 1)
	assert.True(t, responder.Sent[0].Ephemeral)
	assert.Equal(t, "count must be positive", responder.Sent[0].Content)
}

func TestPipeline_Dispatch_NoHandler(t *testing.T) {
	pipeline := NewPipeline()
	pipeline.Register(&MockHandler{canHandle: false})

	responder := NewFakeResponder()
	require.NoError(t, pipeline.Dispatch(NewTestContext(Command("unknown", "")), responder))

	require.Len(t, responder.Sent, 1)
	assert.True(t, responder.Sent[0].Ephemeral)
}

func TestPipeline_Dispatch_SendFailure(t *testing.T) {
	pipeline := NewPipeline()
	pipeline.Register(&MockHandler{canHandle: true, result: &HandlerResult{Response: Text("hi")}})

	responder := NewFakeResponder()
	responder.FailRespond = errors.New("discord down")

	err := pipeline.Dispatch(NewTestContext(Command("challenge", "")), responder)
	assert.Error(t, err)
}

func TestPipeline_MiddlewareOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next Handler) Handler {
			return HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
				order = append(order, name)
				return next.Handle(ctx)
			})
		}
	}

	pipeline := NewPipeline()
	pipeline.Use(mark("outer"), mark("inner"))
	pipeline.Register(HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
		order = append(order, "handler")
		return nil, nil
	}))

	require.NoError(t, pipeline.Dispatch(NewTestContext(Command("challenge", "")), NewFakeResponder()))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestRouter(t *testing.T) {
	pipeline := NewPipeline()
	router := NewRouter("challenge", pipeline)

	var hit string
	router.SubcommandFunc("roll", func(ctx *InteractionContext) (*HandlerResult, error) {
		hit = "roll"
		return nil, nil
	})
	router.ComponentFunc("reroll", func(ctx *InteractionContext) (*HandlerResult, error) {
		hit = "reroll:" + ctx.GetCustomID()
		return nil, nil
	})
	router.Register()

	handler := router.Build()

	tests := []struct {
		name    string
		ctx     *InteractionContext
		can     bool
		wantHit string
	}{
		{name: "subcommand", ctx: NewTestContext(Command("challenge", "roll")), can: true, wantHit: "roll"},
		{name: "component", ctx: NewTestContext(Component("challenge:reroll:3")), can: true, wantHit: "reroll:challenge:reroll:3"},
		{name: "other command", ctx: NewTestContext(Command("dnd", "roll"))},
		{name: "unknown subcommand", ctx: NewTestContext(Command("challenge", "nope"))},
		{name: "other domain component", ctx: NewTestContext(Component("dnd:reroll:3"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit = ""
			assert.Equal(t, tt.can, handler.CanHandle(tt.ctx))
			if tt.can {
				_, err := handler.Handle(tt.ctx)
				require.NoError(t, err)
				assert.Equal(t, tt.wantHit, hit)
			}
		})
	}

	assert.Equal(t, 1, pipeline.HandlerCount())
}

func TestInteractionContext_Params(t *testing.T) {
	ctx := NewTestContext(Command("challenge", "roll"), Param("count", float64(4)))

	assert.Equal(t, 4, ctx.GetIntParam("count", 1))
	assert.Equal(t, 1, ctx.GetIntParam("missing", 1))
	assert.Equal(t, "challenge/roll", ctx.Describe())

	ctx.SetRequestID("req-1")
	assert.Equal(t, "req-1", ctx.RequestID())
	assert.Nil(t, ctx.Responder())
}
