package middleware

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/challenge-bot-discord/internal/discord/core"
)

// RateLimitConfig configures rate limiting behavior
type RateLimitConfig struct {
	// MaxRequests is the maximum number of requests allowed per window
	MaxRequests int

	// Window is the time window for rate limiting
	Window time.Duration

	// KeyFunc extracts the rate limit key from context
	KeyFunc func(*core.InteractionContext) string

	// Message shown when rate limited
	Message string

	// Store for tracking rate limits (if nil, uses in-memory)
	Store RateLimitStore
}

// RateLimitStore tracks rate limit data
type RateLimitStore interface {
	// Increment increments the counter for a key and returns the new count
	Increment(ctx context.Context, key string, window time.Duration) (int, error)
}

// defaultKeyFunc uses user ID as the rate limit key
func defaultKeyFunc(ctx *core.InteractionContext) string {
	return ctx.UserID
}

// RateLimitMiddleware applies rate limiting. A MaxRequests of zero disables it.
func RateLimitMiddleware(config *RateLimitConfig) core.Middleware {
	if config.KeyFunc == nil {
		config.KeyFunc = defaultKeyFunc
	}
	if config.Message == "" {
		config.Message = fmt.Sprintf("The challenge gods need a breather. Please wait %v before rolling again.", config.Window)
	}
	if config.Store == nil {
		config.Store = NewMemoryRateLimitStore()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if config.MaxRequests <= 0 {
				return next.Handle(ctx)
			}

			key := config.KeyFunc(ctx)
			if key == "" {
				return next.Handle(ctx)
			}

			count, err := config.Store.Increment(ctx.Context, key, config.Window)
			if err != nil {
				// Don't block rolls because the store is down
				log.Printf("[Discord] Rate limit store error for %s: %v", key, err)
				return next.Handle(ctx)
			}

			if count > config.MaxRequests {
				return core.Reply(core.Notice("⏱️ " + config.Message)), nil
			}

			return next.Handle(ctx)
		})
	}
}

// UserRateLimitMiddleware applies per-user rate limiting
func UserRateLimitMiddleware(maxRequests int, window time.Duration, store RateLimitStore) core.Middleware {
	return RateLimitMiddleware(&RateLimitConfig{
		MaxRequests: maxRequests,
		Window:      window,
		KeyFunc:     defaultKeyFunc,
		Store:       store,
	})
}

// MemoryRateLimitStore is an in-memory fixed window store
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	count   int
	resetAt time.Time
}

// NewMemoryRateLimitStore creates a new in-memory store
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Increment increments the counter for a key.
// An expired bucket is replaced when its key is touched; Run drops the rest.
func (s *MemoryRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b, exists := s.buckets[key]
	if !exists || !now.Before(b.resetAt) {
		b = &bucket{resetAt: now.Add(window)}
		s.buckets[key] = b
	}

	b.count++
	return b.count, nil
}

// Run sweeps expired buckets every interval until ctx is done
func (s *MemoryRateLimitStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep removes expired buckets and returns how many were dropped
func (s *MemoryRateLimitStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	dropped := 0
	for key, b := range s.buckets {
		if !now.Before(b.resetAt) {
			delete(s.buckets, key)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of tracked keys
func (s *MemoryRateLimitStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}
