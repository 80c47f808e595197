package core

import (
	"fmt"
)

// Router manages handlers for one slash command and its components.
// The domain is both the command name and the custom ID prefix.
type Router struct {
	domain          string
	handlers        map[string]Handler
	middleware      []Middleware
	customIDBuilder *CustomIDBuilder
	pipeline        *Pipeline
}

// NewRouter creates a new domain router
func NewRouter(domain string, pipeline *Pipeline) *Router {
	return &Router{
		domain:          domain,
		handlers:        make(map[string]Handler),
		middleware:      make([]Middleware, 0),
		customIDBuilder: NewCustomIDBuilder(domain),
		pipeline:        pipeline,
	}
}

// Use adds middleware to this router, applied to handlers registered afterwards
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Handle registers a handler for a routing pattern
func (r *Router) Handle(pattern string, handler Handler) *Router {
	r.handlers[pattern] = MiddlewareChain(r.middleware...)(handler)
	return r
}

// SubcommandFunc registers a handler for /<domain> <sub>
func (r *Router) SubcommandFunc(sub string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Handle(fmt.Sprintf("cmd:%s:%s", r.domain, sub), HandlerFunc(fn))
}

// ComponentFunc registers a handler for <domain>:<action> custom IDs
func (r *Router) ComponentFunc(action string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Handle(fmt.Sprintf("component:%s", action), HandlerFunc(fn))
}

// Build creates a single handler from all registered routes
func (r *Router) Build() Handler {
	return &routerHandler{
		domain:   r.domain,
		handlers: r.handlers,
	}
}

// Register registers this router with the pipeline
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r.Build())
	}
}

// GetCustomIDBuilder returns the CustomID builder for this router
func (r *Router) GetCustomIDBuilder() *CustomIDBuilder {
	return r.customIDBuilder
}

// Domain returns the command name this router serves
func (r *Router) Domain() string {
	return r.domain
}

type routerHandler struct {
	domain   string
	handlers map[string]Handler
}

func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	_, ok := h.handlers[h.extractPattern(ctx)]
	return ok
}

func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler, ok := h.handlers[h.extractPattern(ctx)]
	if !ok {
		return nil, NewNotFoundError("handler")
	}
	return handler.Handle(ctx)
}

func (h *routerHandler) extractPattern(ctx *InteractionContext) string {
	if ctx.IsCommand() {
		if ctx.GetCommandName() != h.domain {
			return ""
		}
		return fmt.Sprintf("cmd:%s:%s", h.domain, ctx.GetSubcommand())
	}

	if ctx.IsComponent() {
		customID, err := ParseCustomID(ctx.GetCustomID())
		if err != nil || customID.Domain != h.domain {
			return ""
		}
		return fmt.Sprintf("component:%s", customID.Action)
	}

	return ""
}
