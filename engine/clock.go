package engine

import (
	"sync"
	"time"
)

// Clock is the loop's time source and its only yield point
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// RealClock uses the system clock
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Sleep always waits the full duration; it is not cancelled by the context
func (RealClock) Sleep(d time.Duration) { time.Sleep(d) }

// MockClock provides a controllable time source for testing
// Sleep advances time instantly and optionally runs a hook
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	sleeps      []time.Duration
	onSleep     func(n int)
}

// NewMockClock creates a mock clock with the given start time
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{currentTime: startTime}
}

func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	m.currentTime = m.currentTime.Add(d)
	m.sleeps = append(m.sleeps, d)
	n := len(m.sleeps)
	hook := m.onSleep
	m.mu.Unlock()

	if hook != nil {
		hook(n)
	}
}

// OnSleep registers fn to run after every Sleep with the running sleep count
func (m *MockClock) OnSleep(fn func(n int)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onSleep = fn
}

// Advance advances the current time by the given duration without recording a sleep
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Sleeps returns every duration passed to Sleep
func (m *MockClock) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]time.Duration(nil), m.sleeps...)
}
