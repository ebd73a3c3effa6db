// ABOUTME: Escape sequence tables for CSI and SS3 navigation key codes.
// ABOUTME: Letter finals map directly; digit codes require a trailing '~'.

package key

// csiFinals maps the final byte of ESC [ <final> to a key.
var csiFinals = map[byte]Type{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// csiTilde maps the digit of ESC [ <digit> ~ to a key. Home and End have
// two encodings each depending on the terminal.
var csiTilde = map[byte]Type{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}

// ss3Finals maps ESC O <final>, sent by some terminals in application mode.
var ss3Finals = map[byte]Type{
	'H': KeyHome,
	'F': KeyEnd,
}
