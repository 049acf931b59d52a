package widget

import (
	"errors"
	"fmt"
	"io"

	"github.com/muurk/termform/internal/terminal"
)

// ErrNoOptions is returned when a menu is built without options.
var ErrNoOptions = errors.New("widget: no options to select from")

// MultiSelectHint is printed under the prompt of multi-select menus.
const MultiSelectHint = "Use Space to select/deselect, Enter to confirm"

// cursor is shared by both menus.
type cursor struct {
	labels []string
	pos    int
}

func (c *cursor) move(k terminal.Key) {
	switch k {
	case terminal.KeyUp:
		if c.pos > 0 {
			c.pos--
		}
	case terminal.KeyDown:
		if c.pos < len(c.labels)-1 {
			c.pos++
		}
	}
}

// Single is the state of a single-choice menu.
type Single struct {
	cursor
}

// NewSingle creates a single-choice menu over labels.
func NewSingle(labels []string) (*Single, error) {
	if len(labels) == 0 {
		return nil, ErrNoOptions
	}
	return &Single{cursor: cursor{labels: labels}}, nil
}

// Cursor returns the index under the cursor.
func (s *Single) Cursor() int {
	return s.pos
}

// Apply feeds one key to the menu and reports whether it committed. Once
// committed, Cursor is the chosen index.
func (s *Single) Apply(k terminal.Key) bool {
	if k == terminal.KeyEnter {
		return true
	}
	s.move(k)
	return false
}

// Render writes the prompt and option list.
func (s *Single) Render(w io.Writer, prompt string, style Style) {
	style = style.withDefaults()
	fmt.Fprintln(w, style.Prompt(prompt+":"))
	for i, label := range s.labels {
		if i == s.pos {
			fmt.Fprintln(w, style.Current("> "+label))
		} else {
			fmt.Fprintln(w, style.Option("  "+label))
		}
	}
}

// Multi is the state of a multiple-choice menu.
type Multi struct {
	cursor
	toggled []bool
	count   int
	limit   int
}

// NewMulti creates a multiple-choice menu over labels. limit caps the number
// of toggled options; zero means no cap.
func NewMulti(labels []string, limit int) (*Multi, error) {
	if len(labels) == 0 {
		return nil, ErrNoOptions
	}
	if limit < 0 {
		return nil, fmt.Errorf("widget: selection limit must not be negative, got %d", limit)
	}
	return &Multi{
		cursor:  cursor{labels: labels},
		toggled: make([]bool, len(labels)),
		limit:   limit,
	}, nil
}

// Cursor returns the index under the cursor.
func (m *Multi) Cursor() int {
	return m.pos
}

// Count returns how many options are toggled on.
func (m *Multi) Count() int {
	return m.count
}

// IsToggled reports whether option i is toggled on.
func (m *Multi) IsToggled(i int) bool {
	return i >= 0 && i < len(m.toggled) && m.toggled[i]
}

// Selected returns the toggled indices in option order.
func (m *Multi) Selected() []int {
	out := make([]int, 0, m.count)
	for i, on := range m.toggled {
		if on {
			out = append(out, i)
		}
	}
	return out
}

// Apply feeds one key to the menu and reports whether it committed. Enter
// with nothing toggled does not commit.
func (m *Multi) Apply(k terminal.Key) bool {
	switch k {
	case terminal.KeySpace:
		m.toggle()
	case terminal.KeyEnter:
		return m.count > 0
	default:
		m.move(k)
	}
	return false
}

func (m *Multi) toggle() {
	if m.toggled[m.pos] {
		m.toggled[m.pos] = false
		m.count--
		return
	}
	if m.limit == 0 || m.count < m.limit {
		m.toggled[m.pos] = true
		m.count++
	}
}

// Render writes the prompt, key help and option list with toggle markers.
func (m *Multi) Render(w io.Writer, prompt string, style Style) {
	style = style.withDefaults()
	fmt.Fprintln(w, style.Prompt(prompt+":"))
	fmt.Fprintln(w, style.Hint(MultiSelectHint))
	for i, label := range m.labels {
		marker := " "
		if m.IsToggled(i) {
			marker = "*"
		}
		if i == m.pos {
			fmt.Fprintln(w, style.Current("> ["+marker+"] "+label))
		} else {
			fmt.Fprintln(w, style.Option("  ["+marker+"] "+label))
		}
	}
}
