// ABOUTME: State aggregates everything one editor session mutates or reads
// ABOUTME: Options carry the validated user settings into the loop

package editor

import (
	"github.com/mauromedda/kilo-go/pkg/tui"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// Options configure a session. The zero value is usable: no banner, the
// default marker, Ctrl-Q to quit and End bound to the columns.
type Options struct {
	Banner   string
	Marker   string
	QuitKey  byte
	EndBound EndBound
}

// State is threaded through the loop in place of globals.
type State struct {
	Session *terminal.Session
	Dims    terminal.Dimensions
	Cursor  tui.Cursor
	Options Options
}

// newState probes the window size of the session's terminal.
func newState(s *terminal.Session, opts Options) (*State, error) {
	dims, err := terminal.Probe(s.Terminal())
	if err != nil {
		return nil, err
	}
	return &State{Session: s, Dims: dims, Options: opts}, nil
}
