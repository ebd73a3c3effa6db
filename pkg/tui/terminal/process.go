// ABOUTME: ProcessTerminal implements Terminal over the process's stdin/stdout.
// ABOUTME: Raw mode uses termios directly so reads return after VMIN=0/VTIME timeouts.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// DefaultReadTimeout bounds every Read while raw mode is active.
const DefaultReadTimeout = 100 * time.Millisecond

// ProcessTerminal is a real terminal backed by a pair of files, stdin and
// stdout unless overridden.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	store    AttrStore
	timeout  time.Duration
	original *unix.Termios
}

// Option configures a ProcessTerminal.
type Option func(*ProcessTerminal)

// WithFiles reads input from in and writes output to out.
func WithFiles(in, out *os.File) Option {
	return func(t *ProcessTerminal) {
		t.in = in
		t.out = out
	}
}

// WithReadTimeout sets the raw-mode read timeout (VTIME, 100ms granularity).
func WithReadTimeout(d time.Duration) Option {
	return func(t *ProcessTerminal) {
		t.timeout = d
	}
}

// WithAttrStore replaces the termios backend.
func WithAttrStore(s AttrStore) Option {
	return func(t *ProcessTerminal) {
		t.store = s
	}
}

// NewProcessTerminal returns a ProcessTerminal ready for use.
func NewProcessTerminal(opts ...Option) *ProcessTerminal {
	t := &ProcessTerminal{
		in:      os.Stdin,
		out:     os.Stdout,
		timeout: DefaultReadTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.store == nil {
		t.store = fdStore{fd: int(t.in.Fd())}
	}
	return t
}

// EnterRawMode snapshots the current attributes and applies the raw set.
// Calling it again while raw mode is active is a no-op.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.original != nil {
		return nil
	}

	orig, err := t.store.Get()
	if err != nil {
		return fmt.Errorf("reading terminal attributes: %w", err)
	}
	raw := makeRaw(orig, vtimeFor(t.timeout))
	if err := t.store.Set(&raw); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.original = orig
	return nil
}

// ExitRawMode restores the snapshot taken by EnterRawMode.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.original == nil {
		return nil
	}
	if err := t.store.Set(t.original); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.original = nil
	return nil
}

// Size returns the current terminal dimensions of the output side.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Read performs one bounded read. A timeout with no input, EAGAIN and
// EINTR all report (0, nil). os.File is bypassed because it turns a
// zero-byte read into io.EOF.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	n, err := unix.Read(int(t.in.Fd()), p)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading terminal input: %w", err)
	}
	return n, nil
}

// Write sends bytes to the output file in a single call.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}
