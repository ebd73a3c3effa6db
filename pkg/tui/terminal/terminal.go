// ABOUTME: Defines the Terminal interface for raw mode, size queries, and byte I/O.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

import "errors"

// Terminal abstracts low-level terminal operations: raw mode,
// size queries, and byte-level input and output.
//
// Read follows the raw-mode read policy: it returns as soon as at least
// one byte is available, or (0, nil) once the read timeout elapses with
// no input. Any non-nil error is a genuine I/O failure.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}

var (
	// ErrNotTerminal is returned when raw mode is requested on a file
	// descriptor that is not attached to a terminal.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrZeroSize is returned when the terminal reports zero rows or columns.
	ErrZeroSize = errors.New("terminal reported zero size")
)
