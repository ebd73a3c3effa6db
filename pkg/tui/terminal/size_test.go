// ABOUTME: Tests for Probe and AppendCursorPos.
// ABOUTME: Covers zero-size rejection, size errors, and 1-indexed cursor formatting.

package terminal

import (
	"errors"
	"testing"
)

func TestProbe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		width   int
		height  int
		want    Dimensions
		wantErr error
	}{
		{name: "standard", width: 80, height: 24, want: Dimensions{Rows: 24, Cols: 80}},
		{name: "single cell", width: 1, height: 1, want: Dimensions{Rows: 1, Cols: 1}},
		{name: "zero columns", width: 0, height: 24, wantErr: ErrZeroSize},
		{name: "zero rows", width: 80, height: 0, wantErr: ErrZeroSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Probe(NewVirtualTerminal(tt.width, tt.height))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Probe() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Probe() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Probe() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProbe_SizeError(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)
	cause := errors.New("inappropriate ioctl for device")
	vt.FailSize(cause)

	if _, err := Probe(vt); !errors.Is(err, cause) {
		t.Fatalf("Probe() error = %v, want %v", err, cause)
	}
}

func TestAppendCursorPos(t *testing.T) {
	t.Parallel()

	tests := []struct {
		row, col uint
		want     string
	}{
		{0, 0, "\x1b[1;1H"},
		{4, 9, "\x1b[5;10H"},
		{23, 79, "\x1b[24;80H"},
		{999, 1000, "\x1b[1000;1001H"},
	}
	for _, tt := range tests {
		if got := string(AppendCursorPos(nil, tt.row, tt.col)); got != tt.want {
			t.Errorf("AppendCursorPos(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}
