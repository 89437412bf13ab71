// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"time"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward and returns the new time.
func (m *MockClock) Advance(d time.Duration) time.Time {
	m.NowTime = m.NowTime.Add(d)
	return m.NowTime
}

// Ensure MockClock implements the port.
var _ domain.Clock = (*MockClock)(nil)
