// ABOUTME: Linux termios ioctl request codes.
// ABOUTME: TCSETSF is the TCSAFLUSH equivalent: drain output, discard pending input.

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios      = unix.TCGETS
	ioctlSetTermiosFlush = unix.TCSETSF
)
