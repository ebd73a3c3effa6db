// ABOUTME: Buffer accumulates one frame of terminal output and flushes it in a single write
// ABOUTME: Write-only during frame construction; emptied only after a successful flush

package tui

import (
	"fmt"
	"io"
)

// Buffer is an append-only byte sequence flushed as one Write call.
// Interleaving partial writes with other output tears the frame on
// real terminals, so a frame is never written piecemeal.
type Buffer struct {
	b []byte
}

// Append copies p to the end of the buffer.
func (b *Buffer) Append(p []byte) {
	b.b = append(b.b, p...)
}

// AppendString copies s to the end of the buffer.
func (b *Buffer) AppendString(s string) {
	b.b = append(b.b, s...)
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	b.b = append(b.b, c)
}

// AppendSpaces appends n blank characters.
func (b *Buffer) AppendSpaces(n int) {
	for range n {
		b.b = append(b.b, ' ')
	}
}

// Len returns the number of pending bytes.
func (b *Buffer) Len() int {
	return len(b.b)
}

// Flush writes the pending bytes to w in one call and resets the buffer.
// On failure the content is kept so the caller can decide what to do.
func (b *Buffer) Flush(w io.Writer) error {
	if len(b.b) == 0 {
		return nil
	}
	n, err := w.Write(b.b)
	if err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	if n != len(b.b) {
		return fmt.Errorf("flushing frame: %w", io.ErrShortWrite)
	}
	b.Reset()
	return nil
}

// Reset drops pending bytes while keeping the allocation for the next frame.
func (b *Buffer) Reset() {
	b.b = b.b[:0]
}

// appendTo exposes the backing slice to helpers that format in place.
func (b *Buffer) appendTo(f func([]byte) []byte) {
	b.b = f(b.b)
}
