// Package session keeps one independent list store per user session.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amonks/lists/list"
	"github.com/google/uuid"
)

// DefaultIdleTimeout is used when Options.IdleTimeout is zero.
const DefaultIdleTimeout = 24 * time.Hour

// Options configures a Manager.
type Options struct {
	// IdleTimeout is how long a session may go unused before Sweep ends it.
	IdleTimeout time.Duration

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Manager creates, finds and expires sessions.
type Manager struct {
	idleTimeout time.Duration
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager(opts Options) *Manager {
	idleTimeout := opts.IdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		idleTimeout: idleTimeout,
		now:         now,
		sessions:    make(map[string]*Session),
	}
}

// Create starts a new session with an empty store.
func (m *Manager) Create() *Session {
	sess := &Session{
		ID:       uuid.NewString(),
		Store:    list.NewStore(),
		lastSeen: m.now(),
	}
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess
}

// Get returns the session with the given id and marks it as used.
func (m *Manager) Get(id string) (*Session, error) {
	now := m.now()
	m.mu.Lock()
	sess, ok := m.sessions[id]
	if ok && m.expired(sess, now) {
		delete(m.sessions, id)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	sess.touch(now)
	return sess, nil
}

// Destroy ends a session and discards its store.
func (m *Manager) Destroy(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(m.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep ends every session idle for longer than the idle timeout and returns
// how many were removed.
func (m *Manager) Sweep() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, sess := range m.sessions {
		if m.expired(sess, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Run calls Sweep every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("sweep interval must be positive")
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Sweep()
		}
	}
}

func (m *Manager) expired(sess *Session, now time.Time) bool {
	return now.Sub(sess.idleSince()) > m.idleTimeout
}
