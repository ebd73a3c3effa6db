// ABOUTME: Validation of merged settings before the terminal enters raw mode
// ABOUTME: Checks marker width, quit key, end bound and read timeout range

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/width"
)

// End bound choices for the End key.
const (
	EndBoundCols = "cols"
	EndBoundRows = "rows"
)

// MaxReadTimeout is the largest read timeout the terminal can express
// (VTIME is a byte of deciseconds).
const MaxReadTimeout = 25500 * time.Millisecond

// Validate reports every invalid field, joined.
func (s *Settings) Validate() error {
	var errs []error

	if w := width.VisibleWidth(s.Marker); w != 1 {
		errs = append(errs, fmt.Errorf("marker %q: must be one column wide, got %d", s.Marker, w))
	}
	if !isLetter(s.QuitKey) {
		errs = append(errs, fmt.Errorf("quit_key %q: must be a single ASCII letter", s.QuitKey))
	}
	switch s.EndBound {
	case EndBoundCols, EndBoundRows:
	default:
		errs = append(errs, fmt.Errorf("end_bound %q: must be %q or %q", s.EndBound, EndBoundCols, EndBoundRows))
	}
	if s.ReadTimeout <= 0 || s.ReadTimeout > MaxReadTimeout {
		errs = append(errs, fmt.Errorf("read_timeout %s: must be in (0, %s]", s.ReadTimeout, MaxReadTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// QuitByte returns the control byte produced by Ctrl plus the quit letter.
// Only meaningful after Validate succeeds.
func (s *Settings) QuitByte() byte {
	return key.Ctrl(strings.ToLower(s.QuitKey)[0])
}

func isLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
