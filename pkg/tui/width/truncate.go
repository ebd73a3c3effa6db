// ABOUTME: Truncate cuts a string to a column budget without splitting grapheme clusters
// ABOUTME: Escape sequences are kept and never counted toward the budget

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Truncate returns the longest prefix of s whose visible width is at most
// maxWidth. A wide cluster that would straddle the limit is dropped.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if isPlainASCII(s) {
		if len(s) > maxWidth {
			return s[:maxWidth]
		}
		return s
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}

	var b strings.Builder
	col := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if col+cw > maxWidth {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	return b.String()
}
