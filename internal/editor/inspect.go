// ABOUTME: Inspect is the key inspector: raw mode with one printed line per decoded key
// ABOUTME: Used to check what a terminal sends for navigation keys; 'q' exits

package editor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// Inspect enters raw mode on t and echoes each key until 'q' is read.
// Control bytes print as their decimal code, printable bytes as the code
// and the character, and navigation keys by name. OPOST is off, so lines
// end in "\r\n".
func Inspect(ctx context.Context, t terminal.Terminal) (err error) {
	sess, err := terminal.Open(t)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	defer terminal.RestoreOnPanic(sess)

	dec := key.NewDecoder(t)
	var line []byte
	for {
		k, err := dec.Decode(ctx)
		if err != nil {
			return err
		}
		if k.Type == key.KeyRune && k.Byte == 'q' {
			return nil
		}

		line = appendKeyLine(line[:0], k)
		if _, err := t.Write(line); err != nil {
			return fmt.Errorf("echoing key: %w", err)
		}
	}
}

func appendKeyLine(dst []byte, k key.Key) []byte {
	switch k.Type {
	case key.KeyCtrl:
		dst = strconv.AppendUint(dst, uint64(k.Byte), 10)
	case key.KeyRune:
		dst = strconv.AppendUint(dst, uint64(k.Byte), 10)
		dst = append(dst, " ('"...)
		dst = append(dst, k.Byte)
		dst = append(dst, "')"...)
	default:
		dst = append(dst, k.Type.String()...)
	}
	return append(dst, '\r', '\n')
}
