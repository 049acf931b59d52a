package widget

import (
	"context"
	"fmt"
	"io"

	"github.com/muurk/termform/internal/terminal"
)

// Screen is what the redraw loop needs from a console.
type Screen interface {
	Writer() io.Writer
	Flush() error
	ReadKey() (terminal.Key, error)
}

type menu interface {
	Apply(terminal.Key) bool
	Render(w io.Writer, prompt string, style Style)
}

// run is the redraw-and-navigate loop. ReadKey is its only suspension point.
func run(ctx context.Context, screen Screen, prompt string, m menu, style Style) error {
	w := screen.Writer()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(w, terminal.ClearSequence)
		m.Render(w, prompt, style)
		if err := screen.Flush(); err != nil {
			return err
		}

		key, err := screen.ReadKey()
		if err != nil {
			return err
		}
		if m.Apply(key) {
			fmt.Fprint(w, terminal.ClearSequence)
			return screen.Flush()
		}
	}
}

// RunSingle shows a single-choice menu and returns the committed index.
func RunSingle(ctx context.Context, screen Screen, prompt string, labels []string, style Style) (int, error) {
	s, err := NewSingle(labels)
	if err != nil {
		return -1, err
	}
	if err := run(ctx, screen, prompt, s, style); err != nil {
		return -1, err
	}
	return s.Cursor(), nil
}

// RunMulti shows a multiple-choice menu and returns the committed indices in
// option order. The result is never empty.
func RunMulti(ctx context.Context, screen Screen, prompt string, labels []string, limit int, style Style) ([]int, error) {
	m, err := NewMulti(labels, limit)
	if err != nil {
		return nil, err
	}
	if err := run(ctx, screen, prompt, m, style); err != nil {
		return nil, err
	}
	return m.Selected(), nil
}
