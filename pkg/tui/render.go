// ABOUTME: Renderer assembles a full-screen frame (marker rows, banner, cursor) into a Buffer
// ABOUTME: Each frame ends in exactly one Flush; stale row tails are erased with clear-to-EOL

package tui

import (
	"io"

	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
	"github.com/mauromedda/kilo-go/pkg/tui/width"
)

// DefaultMarker is drawn at the start of every row past the end of content.
const DefaultMarker = "~"

// Cursor is the 0-indexed cursor position. X < Cols and Y < Rows.
type Cursor struct {
	X uint
	Y uint
}

// Renderer draws frames to out.
type Renderer struct {
	out    io.Writer
	marker string
	buf    Buffer
}

// NewRenderer returns a Renderer writing to out. An empty marker selects
// DefaultMarker. The marker must occupy a single column.
func NewRenderer(out io.Writer, marker string) *Renderer {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Renderer{out: out, marker: marker}
}

// RenderFrame draws every row of dims, centers banner on row Rows/3 when
// it is non-empty, places the cursor and flushes the frame in one write.
func (r *Renderer) RenderFrame(dims terminal.Dimensions, cur Cursor, banner string) error {
	b := &r.buf
	b.Reset()

	b.AppendString(terminal.HideCursor)
	b.AppendString(terminal.CursorHome)

	bannerRow := dims.Rows / 3
	for y := uint(0); y < dims.Rows; y++ {
		if banner != "" && y == bannerRow {
			r.drawBanner(banner, int(dims.Cols))
		} else {
			b.AppendString(r.marker)
		}
		b.AppendString(terminal.ClearLine)
		if y < dims.Rows-1 {
			b.AppendString("\r\n")
		}
	}

	b.appendTo(func(p []byte) []byte {
		return terminal.AppendCursorPos(p, cur.Y, cur.X)
	})
	b.AppendString(terminal.ShowCursor)

	return b.Flush(r.out)
}

// drawBanner writes text truncated to cols and centered: the left padding
// starts with the marker and is filled with spaces.
func (r *Renderer) drawBanner(text string, cols int) {
	text = width.Truncate(text, cols)
	padding := (cols - width.VisibleWidth(text)) / 2
	if padding > 0 {
		r.buf.AppendString(r.marker)
		padding--
	}
	r.buf.AppendSpaces(padding)
	r.buf.AppendString(text)
}
