//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import "golang.org/x/term"

// rawMode falls back to x/term on platforms without termios. MakeRaw is
// stricter than cbreak (it also disables signals) but gives the same single
// keystroke behaviour.
type rawMode struct {
	fd int
}

func (m rawMode) Acquire() (ModeGuard, error) {
	state, err := term.MakeRaw(m.fd)
	if err != nil {
		return nil, NewModeError("failed to set terminal attributes", err)
	}
	return &rawGuard{fd: m.fd, state: state}, nil
}

type rawGuard struct {
	fd    int
	state *term.State
}

func (g *rawGuard) Restore() error {
	if g.state == nil {
		return nil
	}
	if err := term.Restore(g.fd, g.state); err != nil {
		return NewModeError("failed to reset terminal attributes", err)
	}
	g.state = nil
	return nil
}

func newTerminalMode(fd int) Mode {
	return rawMode{fd: fd}
}
