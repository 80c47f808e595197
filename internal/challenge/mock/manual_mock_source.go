package mockchallenge

import (
	"fmt"
	"sync"
)

// ManualMockSource implements challenge.Source for testing with predetermined draws.
// Intn and Float64 consume separate queues and panic when a queue runs dry,
// which fails the calling test.
type ManualMockSource struct {
	mu         sync.Mutex
	ints       []int
	floats     []float64
	intIndex   int
	floatIndex int
}

// NewManualMockSource creates a new scripted source
func NewManualMockSource() *ManualMockSource {
	return &ManualMockSource{
		ints:   []int{},
		floats: []float64{},
	}
}

// SetInts sets the results returned by Intn
func (m *ManualMockSource) SetInts(ints ...int) *ManualMockSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = ints
	m.intIndex = 0
	return m
}

// SetFloats sets the results returned by Float64
func (m *ManualMockSource) SetFloats(floats ...float64) *ManualMockSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats = floats
	m.floatIndex = 0
	return m
}

// Reset clears all scripted draws
func (m *ManualMockSource) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = []int{}
	m.floats = []float64{}
	m.intIndex = 0
	m.floatIndex = 0
}

// Remaining returns how many scripted ints and floats are left
func (m *ManualMockSource) Remaining() (ints, floats int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ints) - m.intIndex, len(m.floats) - m.floatIndex
}

// Intn implements challenge.Source.Intn
func (m *ManualMockSource) Intn(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.intIndex >= len(m.ints) {
		panic(fmt.Sprintf("no more predetermined ints available (used %d of %d)", m.intIndex, len(m.ints)))
	}

	v := m.ints[m.intIndex]
	m.intIndex++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("invalid int %d for Intn(%d)", v, n))
	}
	return v
}

// Float64 implements challenge.Source.Float64
func (m *ManualMockSource) Float64() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.floatIndex >= len(m.floats) {
		panic(fmt.Sprintf("no more predetermined floats available (used %d of %d)", m.floatIndex, len(m.floats)))
	}

	v := m.floats[m.floatIndex]
	m.floatIndex++
	if v < 0 || v >= 1 {
		panic(fmt.Sprintf("invalid float %v outside [0, 1)", v))
	}
	return v
}
