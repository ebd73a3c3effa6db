// ABOUTME: RestoreOnPanic recovers from panics, resets the screen, leaves raw mode and exits 1.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the terminal.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred right after a Session is opened. On
// panic it clears the screen, restores the terminal attributes, prints the
// panic value and stack trace to stderr, then exits with code 1.
func RestoreOnPanic(s *Session) {
	r := recover()
	if r == nil {
		return
	}

	restoreAfterPanic(s, r, os.Stderr)
	os.Exit(1)
}

func restoreAfterPanic(s *Session, r any, diag io.Writer) {
	// Best-effort: the terminal may be the thing that failed.
	_, _ = s.Terminal().Write([]byte(ResetSequence))
	_ = s.Close()

	fmt.Fprintf(diag, "\npanic: %v\n\n%s\n", r, debug.Stack())
}
