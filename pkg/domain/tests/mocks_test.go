package tests

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carterpaul1/cis453l-project/pkg/domain/model"
	"github.com/carterpaul1/cis453l-project/pkg/domain/service"
)

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "expected %s, got %s", want, got.String())
}

var _ service.EventDispatcher = &mockEventDispatcher{}

type mockEventDispatcher struct {
	mu     sync.Mutex
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Events() []service.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]service.Event(nil), m.events...)
}

func (m *mockEventDispatcher) Types() []string {
	var types []string
	for _, event := range m.Events() {
		types = append(types, event.Type())
	}
	return types
}

func (m *mockEventDispatcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
}

var _ service.Scheduler = &manualScheduler{}

// manualScheduler fires callbacks only when the test advances its clock.
type manualScheduler struct {
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) service.Timer {
	timer := &manualTimer{at: s.now + d, f: f}
	s.timers = append(s.timers, timer)
	return timer
}

func (s *manualScheduler) Advance(d time.Duration) {
	s.now += d
	for _, timer := range s.timers {
		if !timer.stopped && !timer.fired && timer.at <= s.now {
			timer.fired = true
			timer.f()
		}
	}
}

// FireStopped runs callbacks that were stopped too late, as a real timer
// may when Stop races with expiry.
func (s *manualScheduler) FireStopped() {
	for _, timer := range s.timers {
		if timer.stopped {
			timer.f()
		}
	}
}

func (s *manualScheduler) Pending() int {
	pending := 0
	for _, timer := range s.timers {
		if !timer.stopped && !timer.fired {
			pending++
		}
	}
	return pending
}

var _ service.SessionRepository = &mockSessionRepository{}

type mockSessionRepository struct {
	store map[uuid.UUID]*service.OrderSession
}

func (m *mockSessionRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (m *mockSessionRepository) Create(session *service.OrderSession) error {
	m.store[session.ID()] = session
	return nil
}

func (m *mockSessionRepository) Find(id uuid.UUID) (*service.OrderSession, error) {
	if session, ok := m.store[id]; ok {
		return session, nil
	}
	return nil, model.ErrSessionNotFound
}

func (m *mockSessionRepository) FindAll() ([]*service.OrderSession, error) {
	sessions := make([]*service.OrderSession, 0, len(m.store))
	for _, session := range m.store {
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (m *mockSessionRepository) Delete(id uuid.UUID) error {
	if _, ok := m.store[id]; !ok {
		return model.ErrSessionNotFound
	}
	delete(m.store, id)
	return nil
}
