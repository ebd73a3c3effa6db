// ABOUTME: Byte-exact ANSI control sequences emitted by the renderer and reset paths.
// ABOUTME: AppendCursorPos formats the 1-indexed cursor position without allocating.

package terminal

import "strconv"

// Control sequences. Values are reproduced bit-for-bit for terminal compatibility.
const (
	ClearScreen = "\x1b[2J"
	CursorHome  = "\x1b[H"
	ClearLine   = "\x1b[K"
	HideCursor  = "\x1b[?25l"
	ShowCursor  = "\x1b[?25h"

	// ResetSequence leaves the screen blank with the cursor at the origin.
	ResetSequence = ClearScreen + CursorHome
)

// AppendCursorPos appends ESC [ row ; col H to dst. row and col are 0-indexed;
// the emitted sequence is 1-indexed.
func AppendCursorPos(dst []byte, row, col uint) []byte {
	dst = append(dst, "\x1b["...)
	dst = strconv.AppendUint(dst, uint64(row)+1, 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(col)+1, 10)
	return append(dst, 'H')
}
