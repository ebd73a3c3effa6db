// ABOUTME: Tests for Decoder covering the escape table, truncated sequences, and totality.
// ABOUTME: scriptReader models the raw-mode read policy: one byte per read, then timeouts.

package key

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"testing"
)

// scriptReader hands out one byte per Read, then idle timeouts, then EOF.
type scriptReader struct {
	data  []byte
	idle  int
	reads int
}

func (s *scriptReader) Read(p []byte) (int, error) {
	s.reads++
	if len(s.data) > 0 {
		p[0] = s.data[0]
		s.data = s.data[1:]
		return 1, nil
	}
	if s.idle > 0 {
		s.idle--
		return 0, nil
	}
	return 0, io.EOF
}

// gapReader inserts one timed-out read before every byte.
type gapReader struct {
	data []byte
	gap  bool
}

func (g *gapReader) Read(p []byte) (int, error) {
	if len(g.data) == 0 {
		return 0, io.EOF
	}
	if !g.gap {
		g.gap = true
		return 0, nil
	}
	g.gap = false
	p[0] = g.data[0]
	g.data = g.data[1:]
	return 1, nil
}

func decodeAll(t *testing.T, input string) []Key {
	t.Helper()
	d := NewDecoder(&scriptReader{data: []byte(input), idle: 3})
	var keys []Key
	for {
		k, err := d.Decode(context.Background())
		if errors.Is(err, io.EOF) {
			return keys
		}
		if err != nil {
			t.Fatalf("Decode(%q) unexpected error: %v", input, err)
		}
		keys = append(keys, k)
	}
}

func TestDecode_Sequences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{name: "printable", input: "a", want: Key{Type: KeyRune, Byte: 'a'}},
		{name: "ctrl+q", input: "\x11", want: Key{Type: KeyCtrl, Byte: 0x11}},
		{name: "arrow up", input: "\x1b[A", want: Key{Type: KeyUp}},
		{name: "arrow down", input: "\x1b[B", want: Key{Type: KeyDown}},
		{name: "arrow right", input: "\x1b[C", want: Key{Type: KeyRight}},
		{name: "arrow left", input: "\x1b[D", want: Key{Type: KeyLeft}},
		{name: "home H", input: "\x1b[H", want: Key{Type: KeyHome}},
		{name: "end F", input: "\x1b[F", want: Key{Type: KeyEnd}},
		{name: "home 1~", input: "\x1b[1~", want: Key{Type: KeyHome}},
		{name: "delete", input: "\x1b[3~", want: Key{Type: KeyDelete}},
		{name: "end 4~", input: "\x1b[4~", want: Key{Type: KeyEnd}},
		{name: "page up", input: "\x1b[5~", want: Key{Type: KeyPageUp}},
		{name: "page down", input: "\x1b[6~", want: Key{Type: KeyPageDown}},
		{name: "home 7~", input: "\x1b[7~", want: Key{Type: KeyHome}},
		{name: "end 8~", input: "\x1b[8~", want: Key{Type: KeyEnd}},
		{name: "SS3 home", input: "\x1bOH", want: Key{Type: KeyHome}},
		{name: "SS3 end", input: "\x1bOF", want: Key{Type: KeyEnd}},
		{name: "lone escape", input: "\x1b", want: Escape},
		{name: "escape bracket only", input: "\x1b[", want: Escape},
		{name: "digit without tilde", input: "\x1b[5", want: Escape},
		{name: "digit wrong terminator", input: "\x1b[5x", want: Escape},
		{name: "unmapped digit", input: "\x1b[2~", want: Escape},
		{name: "unknown final", input: "\x1b[Z", want: Escape},
		{name: "unknown SS3", input: "\x1bOA", want: Escape},
		{name: "alt letter", input: "\x1bxy", want: Escape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := NewDecoder(&scriptReader{data: []byte(tt.input), idle: 1})
			got, err := d.Decode(context.Background())
			if err != nil {
				t.Fatalf("Decode(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecode_Stream(t *testing.T) {
	t.Parallel()

	got := decodeAll(t, "a\x1b[Ab\x1b[6~\x11")
	want := []Key{
		{Type: KeyRune, Byte: 'a'},
		{Type: KeyUp},
		{Type: KeyRune, Byte: 'b'},
		{Type: KeyPageDown},
		{Type: KeyCtrl, Byte: 0x11},
	}
	if len(got) != len(want) {
		t.Fatalf("decoded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecode_RetriesWhileIdle(t *testing.T) {
	t.Parallel()

	d := NewDecoder(&gapReader{data: []byte("q")})
	k, err := d.Decode(context.Background())
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if k != (Key{Type: KeyRune, Byte: 'q'}) {
		t.Errorf("Decode() = %+v, want rune q", k)
	}
}

func TestDecode_SlowFollowUpIsEscape(t *testing.T) {
	t.Parallel()

	// ESC then a timeout: the '[' that arrives later starts a new key.
	d := NewDecoder(&gapReader{data: []byte("\x1b[A")})
	k, err := d.Decode(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if k != Escape {
		t.Errorf("Decode() = %+v, want Escape", k)
	}
}

func TestDecode_ReadError(t *testing.T) {
	t.Parallel()

	d := NewDecoder(&scriptReader{})
	if _, err := d.Decode(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("Decode() error = %v, want io.EOF", err)
	}

	// An error while reading a follow-up byte is not swallowed.
	d = NewDecoder(&scriptReader{data: []byte("\x1b[")})
	if _, err := d.Decode(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("Decode() error = %v, want io.EOF", err)
	}
}

func TestDecode_CancelledWhileIdle(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDecoder(&scriptReader{idle: 1 << 30})
	if _, err := d.Decode(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Decode() error = %v, want context.Canceled", err)
	}
}

func TestDecode_Total(t *testing.T) {
	t.Parallel()

	alphabet := []byte{0x1b, '[', 'O', '~', 'A', 'B', 'C', 'D', 'H', 'F', '0', '1', '3', '5', '9', 'x', 0x11}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		input := make([]byte, rng.Intn(12))
		for j := range input {
			input[j] = alphabet[rng.Intn(len(alphabet))]
		}

		r := &scriptReader{data: input, idle: 1}
		d := NewDecoder(r)
		keys := 0
		for {
			_, err := d.Decode(context.Background())
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				t.Fatalf("Decode(%q) unexpected error: %v", input, err)
			}
			keys++
			if keys > len(input) {
				t.Fatalf("Decode(%q) produced more keys than bytes", input)
			}
		}
		if len(input) > 0 && keys == 0 {
			t.Errorf("Decode(%q) produced no key", input)
		}
	}
}
