// ABOUTME: Termios attribute access and the raw-mode attribute derivation.
// ABOUTME: AttrStore abstracts get/set so attribute round trips can be checked without a tty.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// AttrStore reads and writes the attribute set of one terminal.
type AttrStore interface {
	Get() (*unix.Termios, error)
	Set(*unix.Termios) error
}

// fdStore is the AttrStore for a real file descriptor.
type fdStore struct {
	fd int
}

func (s fdStore) Get() (*unix.Termios, error) {
	if !term.IsTerminal(s.fd) {
		return nil, ErrNotTerminal
	}
	return unix.IoctlGetTermios(s.fd, ioctlGetTermios)
}

// Set applies attrs after pending output drains, discarding unread input.
func (s fdStore) Set(attrs *unix.Termios) error {
	return unix.IoctlSetTermios(s.fd, ioctlSetTermiosFlush, attrs)
}

// makeRaw derives the raw attribute set from orig. orig is not modified.
func makeRaw(orig *unix.Termios, vtime uint8) unix.Termios {
	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = vtime
	return raw
}

// vtimeFor converts a read timeout to VTIME deciseconds, rounding up and
// clamping to the 1..255 range the field can hold.
func vtimeFor(d time.Duration) uint8 {
	ds := (d + 100*time.Millisecond - 1) / (100 * time.Millisecond)
	switch {
	case ds < 1:
		return 1
	case ds > 255:
		return 255
	}
	return uint8(ds)
}
