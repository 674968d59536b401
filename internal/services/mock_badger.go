package services

import (
	"sync"

	"wgpt/internal/platform"
)

// BadgeCall is one SetBadge call seen by MockBadger
type BadgeCall struct {
	Window platform.Window
	Count  int
}

// MockBadger implements taskbar.Badger for testing
type MockBadger struct {
	mu    sync.RWMutex
	calls []BadgeCall
}

// NewMockBadger creates a new mock badger for testing
func NewMockBadger() *MockBadger {
	return &MockBadger{}
}

// SetBadge implements Badger interface
func (m *MockBadger) SetBadge(window platform.Window, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, BadgeCall{Window: window, Count: count})
}

// GetCalls returns a copy of every call received
func (m *MockBadger) GetCalls() []BadgeCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]BadgeCall(nil), m.calls...)
}

// GetCounts returns the forwarded counts in order
func (m *MockBadger) GetCounts() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make([]int, len(m.calls))
	for i, c := range m.calls {
		counts[i] = c.Count
	}
	return counts
}
