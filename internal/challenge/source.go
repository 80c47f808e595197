package challenge

//go:generate mockgen -destination=mock/mock_source.go -package=mockchallenge -source=source.go

import (
	"math/rand"
	"time"
)

// Source provides the random draws used by the roller.
// *rand.Rand satisfies it, which lets callers inject a seeded generator.
type Source interface {
	// Intn returns a uniform integer in [0, n)
	Intn(n int) int

	// Float64 returns a uniform float in [0.0, 1.0)
	Float64() float64
}

// NewRandomSource creates a time-seeded source for production rolls
func NewRandomSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededSource creates a reproducible source
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
