package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Sleep advances the mocked time instead of blocking
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	sleeps      []time.Duration
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Sleep records d and advances the mocked time by it
func (m *MockTimeProvider) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
	m.currentTime = m.currentTime.Add(d)
}

// Sleeps returns every duration passed to Sleep
func (m *MockTimeProvider) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}
