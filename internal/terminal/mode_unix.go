//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"golang.org/x/sys/unix"

	"github.com/muurk/termform/internal/logging"
)

// TermiosMode clears ICANON and ECHO on a file descriptor for the duration
// of a guard. Every other flag is left untouched.
type TermiosMode struct {
	fd int
}

// NewTermiosMode creates a Mode for the given terminal file descriptor.
func NewTermiosMode(fd int) *TermiosMode {
	return &TermiosMode{fd: fd}
}

// Acquire snapshots the current attributes and applies cbreak mode.
func (m *TermiosMode) Acquire() (ModeGuard, error) {
	orig, err := unix.IoctlGetTermios(m.fd, ioctlGetTermios)
	if err != nil {
		return nil, NewModeError("failed to get terminal attributes", err)
	}

	cbreak := *orig
	cbreak.Lflag &^= unix.ICANON | unix.ECHO
	cbreak.Cc[unix.VMIN] = 1
	cbreak.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(m.fd, ioctlSetTermios, &cbreak); err != nil {
		return nil, NewModeError("failed to set terminal attributes", err)
	}
	logging.LogModeChange(m.fd, "cbreak")

	return &termiosGuard{fd: m.fd, orig: orig}, nil
}

type termiosGuard struct {
	fd   int
	orig *unix.Termios
}

// Restore puts the snapshotted attributes back. Calling it more than once is
// harmless.
func (g *termiosGuard) Restore() error {
	if g.orig == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(g.fd, ioctlSetTermios, g.orig); err != nil {
		return NewModeError("failed to reset terminal attributes", err)
	}
	g.orig = nil
	logging.LogModeChange(g.fd, "restored")
	return nil
}

func newTerminalMode(fd int) Mode {
	return NewTermiosMode(fd)
}
