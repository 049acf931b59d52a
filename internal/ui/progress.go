package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/termform/internal/form"
)

// Progress renders a bar showing how far through a form the operator is.
type Progress struct {
	Width int
	bar   progress.Model
}

// NewProgress creates a progress display sized for the terminal
func NewProgress() *Progress {
	return (&Progress{}).SetWidth(GetTerminalWidth())
}

// SetWidth sets the terminal width for responsive rendering
func (p *Progress) SetWidth(width int) *Progress {
	p.Width = width
	barWidth := width - 30 // Leave room for the counter and field name
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 50 {
		barWidth = 50
	}
	p.bar = progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(barWidth),
	)
	return p
}

// Render returns the bar for the field at index (zero-based) of total.
func (p *Progress) Render(index, total int, name string) string {
	percent := 0.0
	if total > 0 {
		percent = float64(index) / float64(total)
	}
	counter := fmt.Sprintf("[%d/%d]", index+1, total)
	return lipgloss.NewStyle().
		PaddingLeft(2).
		Render(fmt.Sprintf("%s  %s  %s", p.bar.ViewAs(percent), counter, ProgressLabelStyle.Render(name)))
}

// Hook returns a form.FieldHook that prints the bar before each field.
func (p *Progress) Hook() form.FieldHook {
	return func(w io.Writer, index, total int, name string) {
		fmt.Fprintln(w, p.Render(index, total, name))
	}
}
