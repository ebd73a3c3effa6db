// ABOUTME: BSD and Darwin termios ioctl request codes.
// ABOUTME: TIOCSETAF is the TCSAFLUSH equivalent: drain output, discard pending input.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios      = unix.TIOCGETA
	ioctlSetTermiosFlush = unix.TIOCSETAF
)
