package session

import (
	"sync"
	"time"

	"github.com/amonks/lists/list"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Success string
	Error   string
}

// IsZero reports whether the flash carries no message.
func (f Flash) IsZero() bool {
	return f.Success == "" && f.Error == ""
}

// Session holds the state of one user session.
type Session struct {
	// ID identifies the session in the transport (cookie value, etc.).
	ID string

	// Store holds the session's lists. It is never shared across sessions.
	Store *list.Store

	mu       sync.Mutex
	flash    Flash
	lastSeen time.Time
}

// SetFlash replaces the pending flash.
func (s *Session) SetFlash(flash Flash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = flash
}

// TakeFlash returns the pending flash and clears it.
func (s *Session) TakeFlash() Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	flash := s.flash
	s.flash = Flash{}
	return flash
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
