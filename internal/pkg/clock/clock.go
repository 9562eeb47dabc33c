// Package clock abstracts time.Now so token issuance and other
// time-sensitive code can be tested with a fixed clock.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (*RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a settable clock for tests.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (m *MockClock) Now() time.Time {
	return m.now
}

func (m *MockClock) Set(t time.Time) {
	m.now = t
}

func (m *MockClock) Add(d time.Duration) {
	m.now = m.now.Add(d)
}
