// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output, replays scripted input chunks, and injects raw-mode failures.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
// It records written output, tracks raw-mode transitions and serves Read
// from a queue of input chunks. An empty chunk is one read timeout.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	width      int
	height     int
	rawMode    bool
	enterCount int
	exitCount  int
	input      [][]byte
	writes     int

	enterErr error
	exitErr  error
	sizeErr  error
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// EnterRawMode records a raw-mode entry, or fails if FailEnter was set.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.enterErr != nil {
		return fmt.Errorf("reading terminal attributes: %w", v.enterErr)
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitCount++
	if v.exitErr != nil {
		return fmt.Errorf("exiting raw mode: %w", v.exitErr)
	}
	v.rawMode = false
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// Read serves the next queued chunk. A drained queue reports io.EOF.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		return 0, io.EOF
	}
	chunk := v.input[0]
	n := copy(p, chunk)
	if n < len(chunk) {
		v.input[0] = chunk[n:]
	} else {
		v.input = v.input[1:]
	}
	return n, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writes++
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues input. Each argument is delivered by separate Read calls;
// "" queues a read that times out with no data.
func (v *VirtualTerminal) Feed(chunks ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, c := range chunks {
		v.input = append(v.input, []byte(c))
	}
}

// FailEnter makes EnterRawMode fail as if the attribute read failed.
func (v *VirtualTerminal) FailEnter(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterErr = err
}

// FailExit makes ExitRawMode fail.
func (v *VirtualTerminal) FailExit(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitErr = err
}

// FailSize makes Size fail.
func (v *VirtualTerminal) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Writes returns how many Write calls were made.
func (v *VirtualTerminal) Writes() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writes
}

// Reset clears the output buffer and the write count.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writes = 0
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the terminal dimensions.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}
