package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/locvowork/employee_roster/internal/logger"
	"github.com/locvowork/employee_roster/internal/repository"
	"github.com/locvowork/employee_roster/internal/service"
)

// Session owns one roster. Nothing is shared between sessions.
type Session struct {
	ID        string
	Employees *service.EmployeeService

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen returns the time of the last request made with this session.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Manager keeps the live sessions and expires idle ones.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewManager creates a manager whose sessions expire after ttl of inactivity.
// A non-positive ttl disables expiry.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a session with an empty roster.
func (m *Manager) Create(ctx context.Context) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Employees: service.NewEmployeeService(repository.NewEmployeeRepository()),
		lastSeen:  m.now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	total := len(m.sessions)
	m.mu.Unlock()

	logger.InfoLog(ctx, "Session %s created, %d live", s.ID, total)
	return s
}

// Get returns the session for id and marks it as used.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	s.touch(m.now())
	return s, true
}

// Delete discards a session and its roster.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than the ttl and returns how many.
func (m *Manager) Sweep(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	expired := 0
	for id, s := range m.sessions {
		if now.Sub(s.LastSeen()) > m.ttl {
			delete(m.sessions, id)
			expired++
		}
	}
	return expired
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || m.ttl <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(m.now()); n > 0 {
				logger.InfoLog(ctx, "Expired %d idle sessions", n)
			}
		}
	}
}
