// ABOUTME: Tests for Renderer frame assembly: exact bytes, banner centering, single flush
// ABOUTME: Uses VirtualTerminal to capture output and count writes

package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

func TestRenderFrame_Deterministic(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(10, 5)
	r := NewRenderer(vt, "")

	err := r.RenderFrame(terminal.Dimensions{Rows: 5, Cols: 10}, Cursor{}, "")
	if err != nil {
		t.Fatalf("RenderFrame() unexpected error: %v", err)
	}

	want := "\x1b[?25l\x1b[H" +
		"~\x1b[K\r\n" +
		"~\x1b[K\r\n" +
		"~\x1b[K\r\n" +
		"~\x1b[K\r\n" +
		"~\x1b[K" +
		"\x1b[1;1H" +
		"\x1b[?25h"
	if got := vt.Output(); got != want {
		t.Errorf("frame = %q\nwant  %q", got, want)
	}
	if vt.Writes() != 1 {
		t.Errorf("frame took %d writes, want 1", vt.Writes())
	}
}

func TestRenderFrame_CursorPosition(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	r := NewRenderer(vt, "")
	if err := r.RenderFrame(terminal.Dimensions{Rows: 24, Cols: 80}, Cursor{X: 7, Y: 3}, ""); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(vt.Output(), "\x1b[4;8H\x1b[?25h") {
		t.Errorf("frame tail = %q, want cursor at 4;8", vt.Output()[len(vt.Output())-16:])
	}
}

func TestRenderFrame_Banner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cols    uint
		banner  string
		wantRow string
	}{
		{
			name:    "centered with marker",
			cols:    20,
			banner:  "abcdefgh",
			wantRow: "~     abcdefgh",
		},
		{
			name:    "odd remainder",
			cols:    11,
			banner:  "abcd",
			wantRow: "~  abcd",
		},
		{
			name:    "exact fit has no marker",
			cols:    8,
			banner:  "abcdefgh",
			wantRow: "abcdefgh",
		},
		{
			name:    "truncated",
			cols:    5,
			banner:  "Kilo editor",
			wantRow: "Kilo ",
		},
		{
			name:    "padding of one is the marker alone",
			cols:    4,
			banner:  "ab",
			wantRow: "~ab",
		},
		{
			name:    "wide characters measured in columns",
			cols:    10,
			banner:  "你好",
			wantRow: "~  你好",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vt := terminal.NewVirtualTerminal(int(tt.cols), 6)
			r := NewRenderer(vt, "")
			if err := r.RenderFrame(terminal.Dimensions{Rows: 6, Cols: tt.cols}, Cursor{}, tt.banner); err != nil {
				t.Fatal(err)
			}

			body := strings.TrimPrefix(vt.Output(), "\x1b[?25l\x1b[H")
			rows := strings.Split(body, "\r\n")
			if len(rows) != 6 {
				t.Fatalf("got %d rows, want 6", len(rows))
			}
			// Banner lives on row Rows/3.
			if got := rows[2]; got != tt.wantRow+"\x1b[K" {
				t.Errorf("banner row = %q, want %q", got, tt.wantRow+"\x1b[K")
			}
			for _, y := range []int{0, 1, 3, 4} {
				if rows[y] != "~\x1b[K" {
					t.Errorf("row %d = %q, want marker row", y, rows[y])
				}
			}
		})
	}
}

func TestRenderFrame_CustomMarker(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(4, 2)
	r := NewRenderer(vt, "·")
	if err := r.RenderFrame(terminal.Dimensions{Rows: 2, Cols: 4}, Cursor{}, ""); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(vt.Output(), "·\x1b[K"); got != 2 {
		t.Errorf("custom marker rows = %d, want 2", got)
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestRenderFrame_WriteError(t *testing.T) {
	t.Parallel()

	cause := errors.New("broken pipe")
	r := NewRenderer(failingWriter{err: cause}, "")
	err := r.RenderFrame(terminal.Dimensions{Rows: 3, Cols: 3}, Cursor{}, "")
	if !errors.Is(err, cause) {
		t.Fatalf("RenderFrame() = %v, want %v", err, cause)
	}
}
