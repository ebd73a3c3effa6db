// ABOUTME: Session is the scoped guard around raw mode: acquired once, released exactly once.
// ABOUTME: Close is idempotent so it can be deferred and also called on error paths.

package terminal

import (
	"sync"
	"sync/atomic"
)

// Session owns a Terminal that has been switched into raw mode.
type Session struct {
	term   Terminal
	active atomic.Bool

	once     sync.Once
	closeErr error
}

// Open enters raw mode on t and returns the guarding Session.
// If raw mode cannot be entered no Session is returned and nothing
// needs to be restored.
func Open(t Terminal) (*Session, error) {
	if err := t.EnterRawMode(); err != nil {
		return nil, err
	}
	s := &Session{term: t}
	s.active.Store(true)
	return s, nil
}

// Terminal returns the guarded terminal.
func (s *Session) Terminal() Terminal {
	return s.term
}

// Active reports whether raw mode is still in effect.
func (s *Session) Active() bool {
	return s.active.Load()
}

// Close restores the attributes captured by Open. Only the first call
// touches the terminal; later calls return the first result.
func (s *Session) Close() error {
	s.once.Do(func() {
		s.closeErr = s.term.ExitRawMode()
		s.active.Store(false)
	})
	return s.closeErr
}
