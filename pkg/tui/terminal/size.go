// ABOUTME: WindowSizeProbe: queries terminal dimensions once at startup.
// ABOUTME: Zero rows or columns is an error; there is no fallback size.

package terminal

import "fmt"

// Dimensions is the screen size in character cells. Both fields are > 0.
type Dimensions struct {
	Rows uint
	Cols uint
}

// Probe queries t for its current size.
func Probe(t Terminal) (Dimensions, error) {
	w, h, err := t.Size()
	if err != nil {
		return Dimensions{}, fmt.Errorf("probing window size: %w", err)
	}
	if w <= 0 || h <= 0 {
		return Dimensions{}, fmt.Errorf("probing window size: %dx%d: %w", w, h, ErrZeroSize)
	}
	return Dimensions{Rows: uint(h), Cols: uint(w)}, nil
}
