// Package ui provides the styled terminal output for the termform CLI.
//
// It uses Lipgloss for styling and Bubble Tea for one-shot rendering. The
// components follow a "render and move on" pattern: none of them take over
// the terminal the way a full TUI would, so they interleave cleanly with
// prompts written by the form package.
//
//   - FormTheme / MenuStyle: colours for prompts, notices and menus
//   - Header: banner with the form title and where it was loaded from
//   - Progress: bar shown before each field
//   - Result / FormSummary: boxes for the filled values or a failure
//   - ConfirmOverwrite: a yes/no menu built from a one-field form
//
// Example:
//
//	p := form.NewPrompter(console,
//	    form.WithTheme(ui.FormTheme()),
//	    form.WithFieldHook(ui.NewProgress().Hook()))
//	if err := f.Fill(ctx, p); err != nil {
//	    ui.NewPrinter(os.Stderr).PrintResult(ui.FillFailure(err))
//	}
//	ui.RenderOnce(os.Stdout, ui.FormSummary("Personal details", f).Render())
//
// # Logging Integration
//
// Logging is controlled by the TERMFORM_LOG_LEVEL environment variable and
// goes to stderr, so styled output on stdout stays clean.
package ui
