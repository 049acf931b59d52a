package terminal

// Mode switches the terminal into cbreak mode (no canonical input, no echo)
// and hands back a guard that puts the previous attributes back.
type Mode interface {
	Acquire() (ModeGuard, error)
}

// ModeGuard restores the attributes captured by Mode.Acquire.
type ModeGuard interface {
	Restore() error
}

// NoopMode is used when input is not a terminal.
type NoopMode struct{}

// Acquire implements Mode
func (NoopMode) Acquire() (ModeGuard, error) {
	return noopGuard{}, nil
}

type noopGuard struct{}

func (noopGuard) Restore() error { return nil }
