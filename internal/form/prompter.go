package form

import (
	"context"
	"fmt"
	"io"

	"github.com/muurk/termform/internal/widget"
)

// ParseFailureMessage is shown when input passes validation but does not
// convert to the field's type.
const ParseFailureMessage = "Invalid input. Please try again."

// Console is the terminal surface fields are filled through.
// *terminal.Console satisfies it.
type Console interface {
	widget.Screen
	ReadLine() (string, error)
}

// Theme decorates prompts, notices and menus.
type Theme struct {
	Prompt func(string) string // Text field prompt
	Notice func(string) string // Validation and parse failure messages
	Menu   widget.Style
}

// PlainTheme prints everything undecorated.
func PlainTheme() Theme {
	return Theme{
		Prompt: func(s string) string { return s },
		Notice: func(s string) string { return s },
		Menu:   widget.PlainStyle(),
	}
}

// Prompter couples a console with a theme. Fields fill themselves through it.
type Prompter struct {
	console Console
	theme   Theme
	hook    FieldHook
}

// FieldHook runs before Form.Fill starts each field. index is zero-based;
// w is where prompts are written.
type FieldHook func(w io.Writer, index, total int, name string)

// PrompterOption configures a Prompter.
type PrompterOption func(*Prompter)

// WithTheme sets the theme used for prompts and menus.
func WithTheme(theme Theme) PrompterOption {
	return func(p *Prompter) {
		if theme.Prompt != nil {
			p.theme.Prompt = theme.Prompt
		}
		if theme.Notice != nil {
			p.theme.Notice = theme.Notice
		}
		p.theme.Menu = theme.Menu
	}
}

// WithFieldHook installs a hook called before each field of a form.
func WithFieldHook(hook FieldHook) PrompterOption {
	return func(p *Prompter) {
		p.hook = hook
	}
}

// NewPrompter creates a Prompter with the plain theme unless overridden.
func NewPrompter(console Console, opts ...PrompterOption) *Prompter {
	p := &Prompter{console: console, theme: PlainTheme()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Console returns the underlying console.
func (p *Prompter) Console() Console {
	return p.console
}

func (p *Prompter) beforeField(index, total int, name string) {
	if p.hook != nil {
		p.hook(p.console.Writer(), index, total, name)
	}
}

// ask prints the prompt and blocks for one line.
func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.console.Writer(), p.theme.Prompt(prompt)+" ")
	return p.console.ReadLine()
}

// notice prints a recoverable failure message.
func (p *Prompter) notice(msg string) {
	fmt.Fprintln(p.console.Writer(), p.theme.Notice(msg))
}

func (p *Prompter) selectOne(ctx context.Context, prompt string, labels []string) (int, error) {
	return widget.RunSingle(ctx, p.console, prompt, labels, p.theme.Menu)
}

func (p *Prompter) selectMany(ctx context.Context, prompt string, labels []string, limit int) ([]int, error) {
	return widget.RunMulti(ctx, p.console, prompt, labels, limit, p.theme.Menu)
}
