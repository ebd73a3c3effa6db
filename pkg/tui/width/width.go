// ABOUTME: VisibleWidth computes display width of strings with grapheme-aware segmentation
// ABOUTME: Fast path for plain ASCII; escape sequences contribute zero width

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the display width of s, accounting for ANSI escape
// sequences (which contribute zero width) and grapheme clusters (which may
// be wider than one cell for East Asian characters and emoji).
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(stripped, state)
		w += graphemeWidth(cluster)
		stripped = rest
		state = newState
	}
	return w
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
