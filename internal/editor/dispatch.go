// ABOUTME: Dispatcher applies decoded Keys to the cursor within the screen bounds
// ABOUTME: The quit key clears the screen and ends the loop; unbound keys are no-ops

package editor

import (
	"fmt"
	"io"

	"github.com/mauromedda/kilo-go/pkg/tui"
	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// Action tells the loop what to do after a key was dispatched.
type Action uint8

const (
	Continue Action = iota
	Quit
)

// EndBound selects the dimension the End key measures the row against.
type EndBound uint8

const (
	// EndCols moves End to the last column.
	EndCols EndBound = iota
	// EndRows uses the row count as the bound, still clamped to the last column.
	EndRows
)

// ParseEndBound maps the config names "cols" and "rows" to an EndBound.
func ParseEndBound(s string) (EndBound, error) {
	switch s {
	case "", "cols":
		return EndCols, nil
	case "rows":
		return EndRows, nil
	}
	return EndCols, fmt.Errorf("unknown end bound %q", s)
}

// DefaultQuitKey is Ctrl-Q.
var DefaultQuitKey = key.Ctrl('q')

// Dispatcher owns key bindings. It writes to out only when quitting.
type Dispatcher struct {
	out      io.Writer
	quitKey  byte
	endBound EndBound
}

// NewDispatcher returns a Dispatcher. quitKey is the control byte that
// ends the session; zero selects DefaultQuitKey.
func NewDispatcher(out io.Writer, quitKey byte, bound EndBound) *Dispatcher {
	if quitKey == 0 {
		quitKey = DefaultQuitKey
	}
	return &Dispatcher{out: out, quitKey: quitKey, endBound: bound}
}

// Dispatch applies k to cur. cur must already satisfy X < dims.Cols and
// Y < dims.Rows, and it still does on return.
func (d *Dispatcher) Dispatch(k key.Key, cur *tui.Cursor, dims terminal.Dimensions) (Action, error) {
	switch k.Type {
	case key.KeyCtrl:
		if k.Byte == d.quitKey {
			if _, err := io.WriteString(d.out, terminal.ResetSequence); err != nil {
				return Quit, fmt.Errorf("clearing screen: %w", err)
			}
			return Quit, nil
		}
	case key.KeyUp:
		moveUp(cur)
	case key.KeyDown:
		moveDown(cur, dims)
	case key.KeyLeft:
		if cur.X > 0 {
			cur.X--
		}
	case key.KeyRight:
		if cur.X+1 < dims.Cols {
			cur.X++
		}
	case key.KeyHome:
		cur.X = 0
	case key.KeyEnd:
		cur.X = d.endColumn(dims)
	case key.KeyPageUp:
		for range dims.Rows {
			moveUp(cur)
		}
	case key.KeyPageDown:
		for range dims.Rows {
			moveDown(cur, dims)
		}
	case key.KeyRune, key.KeyDelete, key.KeyEscape:
		// No text buffer to edit.
	}
	return Continue, nil
}

func (d *Dispatcher) endColumn(dims terminal.Dimensions) uint {
	bound := dims.Cols
	if d.endBound == EndRows {
		bound = min(dims.Rows, dims.Cols)
	}
	return bound - 1
}

func moveUp(cur *tui.Cursor) {
	if cur.Y > 0 {
		cur.Y--
	}
}

func moveDown(cur *tui.Cursor, dims terminal.Dimensions) {
	if cur.Y+1 < dims.Rows {
		cur.Y++
	}
}
