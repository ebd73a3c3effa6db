// ABOUTME: Decoder turns a bounded-blocking byte stream into Keys, one Key per call.
// ABOUTME: Escape follow-ups are single reads; a missing byte means a real Escape keypress.

package key

import (
	"context"
	"fmt"
	"io"
)

const escByte = 0x1b

// Decoder reads Keys from r. r must follow the raw-mode read policy:
// return at least one byte when input is available and (0, nil) after
// its timeout otherwise.
type Decoder struct {
	r   io.Reader
	one [1]byte
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode blocks until one key is available and returns it. Read errors
// are wrapped and returned; unrecognized sequences decode to Escape.
// ctx is checked only while idle between timed-out reads.
func (d *Decoder) Decode(ctx context.Context) (Key, error) {
	b, err := d.waitByte(ctx)
	if err != nil {
		return Key{}, err
	}
	if b != escByte {
		return fromByte(b), nil
	}

	var seq [3]byte
	for i := range 2 {
		var ok bool
		seq[i], ok, err = d.tryByte()
		if err != nil {
			return Key{}, err
		}
		if !ok {
			return Escape, nil
		}
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			var ok bool
			seq[2], ok, err = d.tryByte()
			if err != nil {
				return Key{}, err
			}
			if !ok || seq[2] != '~' {
				return Escape, nil
			}
			if t, found := csiTilde[seq[1]]; found {
				return Key{Type: t}, nil
			}
			return Escape, nil
		}
		if t, found := csiFinals[seq[1]]; found {
			return Key{Type: t}, nil
		}
	case 'O':
		if t, found := ss3Finals[seq[1]]; found {
			return Key{Type: t}, nil
		}
	}
	return Escape, nil
}

// waitByte retries timed-out reads until a byte arrives.
func (d *Decoder) waitByte(ctx context.Context) (byte, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		b, ok, err := d.tryByte()
		if err != nil {
			return 0, err
		}
		if ok {
			return b, nil
		}
	}
}

// tryByte performs exactly one read. ok is false when the read timed out.
func (d *Decoder) tryByte() (b byte, ok bool, err error) {
	n, err := d.r.Read(d.one[:])
	if n == 1 {
		return d.one[0], true, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading key: %w", err)
	}
	return 0, false, nil
}
