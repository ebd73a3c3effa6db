// ABOUTME: Run drives the render, decode and dispatch cycle inside a raw-mode session
// ABOUTME: Execute maps the outcome to an exit code and reports fatal errors

package editor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui"
	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// Exit codes returned by Execute.
const (
	ExitOK    = 0
	ExitFatal = 1
)

// Run enters raw mode on t and runs the editor until the quit key is
// pressed, ctx is cancelled, or an I/O operation fails. The terminal is
// restored on every path. On failure the screen is cleared before the
// attributes are restored.
func Run(ctx context.Context, t terminal.Terminal, opts Options) (err error) {
	sess, err := terminal.Open(t)
	if err != nil {
		writeReset(t)
		return err
	}
	defer func() {
		if err != nil {
			log.Debug("session failed: %v", err)
			writeReset(t)
		}
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	defer terminal.RestoreOnPanic(sess)

	st, err := newState(sess, opts)
	if err != nil {
		return err
	}
	log.Debug("session started: %dx%d", st.Dims.Cols, st.Dims.Rows)
	return st.loop(ctx)
}

// Execute runs the editor and returns the process exit code. Fatal errors
// are printed to diag as "kilo-go: <error>".
func Execute(ctx context.Context, t terminal.Terminal, opts Options, diag io.Writer) int {
	err := Run(ctx, t, opts)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(diag, "kilo-go: interrupted")
		return ExitFatal
	default:
		fmt.Fprintf(diag, "kilo-go: %v\n", err)
		return ExitFatal
	}
}

func (st *State) loop(ctx context.Context) error {
	t := st.Session.Terminal()
	r := tui.NewRenderer(t, st.Options.Marker)
	dec := key.NewDecoder(t)
	disp := NewDispatcher(t, st.Options.QuitKey, st.Options.EndBound)

	for {
		if err := r.RenderFrame(st.Dims, st.Cursor, st.Options.Banner); err != nil {
			return err
		}
		k, err := dec.Decode(ctx)
		if err != nil {
			return err
		}
		log.Debug("key %s", k)

		action, err := disp.Dispatch(k, &st.Cursor, st.Dims)
		if err != nil {
			return err
		}
		if action == Quit {
			log.Debug("quit at %d,%d", st.Cursor.X, st.Cursor.Y)
			return nil
		}
	}
}

// writeReset clears the screen. The terminal may be what failed, so the
// write error is dropped.
func writeReset(t terminal.Terminal) {
	_, _ = t.Write([]byte(terminal.ResetSequence))
}
