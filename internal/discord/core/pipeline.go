package core

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	handlers     []Handler
	middleware   []Middleware
	errorHandler ErrorHandler

	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler handles errors that occur during pipeline execution
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// NewPipeline creates a new handler pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		handlers:     make([]Handler, 0),
		middleware:   make([]Middleware, 0),
		errorHandler: defaultErrorHandler,
	}
}

// Register adds handlers to the pipeline, wrapped in the middleware added so far
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		p.handlers = append(p.handlers, MiddlewareChain(p.middleware...)(h))
	}
}

// Use adds middleware to the pipeline
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// SetErrorHandler sets a custom error handler
func (p *Pipeline) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errorHandler = handler
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// HandleInteraction is the discordgo event callback
func (p *Pipeline) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := p.Execute(context.Background(), s, i); err != nil {
		log.Printf("[Pipeline] Failed to handle interaction: %v", err)
	}
}

// Execute runs the pipeline for an interaction
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	interactionCtx := NewInteractionContext(ctx, s, i)
	return p.Dispatch(interactionCtx, NewDiscordResponder(s, i))
}

// Dispatch runs the first handler that can handle the interaction and sends
// its response through responder
func (p *Pipeline) Dispatch(ctx *InteractionContext, responder Responder) error {
	ctx.SetResponder(responder)

	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	errorHandler := p.errorHandler
	p.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(ctx) {
			continue
		}

		result, err := handler.Handle(ctx)
		if err != nil {
			result = errorHandler(ctx, err)
		}

		if result != nil && result.Response != nil {
			if err := sendResponse(responder, result); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
		}
		return nil
	}

	log.Printf("[Pipeline] No handler for %s", ctx.Describe())
	if responder.HasResponded() {
		return nil
	}
	return responder.Respond(Notice("I don't know how to handle that command."))
}

// sendResponse edits a deferred reply or sends the initial one
func sendResponse(responder Responder, result *HandlerResult) error {
	if result.Deferred || responder.IsDeferred() {
		return responder.Edit(result.Response)
	}
	return responder.Respond(result.Response)
}

// defaultErrorHandler shows the user message of a HandlerError or a generic one
func defaultErrorHandler(ctx *InteractionContext, err error) *HandlerResult {
	handlerErr := FromError(err)
	return Reply(Notice(handlerErr.UserMessage))
}

// MiddlewareChain creates a single middleware from multiple middleware.
// The first middleware is the outermost.
func MiddlewareChain(middleware ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}
