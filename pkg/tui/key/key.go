// ABOUTME: Defines the Key type: a closed set of logical key events produced by the Decoder.
// ABOUTME: Control bytes keep their raw value; Ctrl maps a letter to its control byte.

package key

import "fmt"

// Key is one decoded keyboard event. Keys are values and never mutated
// after the Decoder returns them.
type Key struct {
	Type Type
	Byte byte // raw byte for KeyRune and KeyCtrl
}

// Type enumerates every kind of Key. The set is closed: switches over
// Type in this module list each value.
type Type uint8

const (
	KeyRune     Type = iota // Printable (non-control) byte
	KeyCtrl                 // Control byte: 0x00-0x1F and DEL
	KeyUp                   // Arrow up
	KeyDown                 // Arrow down
	KeyLeft                 // Arrow left
	KeyRight                // Arrow right
	KeyHome                 // Home
	KeyEnd                  // End
	KeyDelete               // Delete
	KeyPageUp               // Page Up
	KeyPageDown             // Page Down
	KeyEscape               // Lone or unrecognized escape sequence
)

// Escape is the bare Escape event.
var Escape = Key{Type: KeyEscape}

// Ctrl returns the control byte produced by holding Ctrl with c,
// i.e. c with only its low five bits kept.
func Ctrl(c byte) byte {
	return c & 0x1f
}

// IsCtrl reports whether k is the control byte for letter c.
func (k Key) IsCtrl(c byte) bool {
	return k.Type == KeyCtrl && k.Byte == Ctrl(c)
}

// fromByte classifies a single non-escape byte.
func fromByte(b byte) Key {
	if b < 0x20 || b == 0x7f {
		return Key{Type: KeyCtrl, Byte: b}
	}
	return Key{Type: KeyRune, Byte: b}
}

var typeNames = [...]string{
	KeyRune:     "Rune",
	KeyCtrl:     "Ctrl",
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyDelete:   "Delete",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyEscape:   "Escape",
}

// String returns the name of the type.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(rune(k.Byte))
	case KeyCtrl:
		if k.Byte == 0x7f {
			return "Ctrl+?"
		}
		return "Ctrl+" + string(rune(k.Byte|0x40))
	default:
		return k.Type.String()
	}
}
