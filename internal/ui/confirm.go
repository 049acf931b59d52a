package ui

import (
	"context"
	"fmt"

	"github.com/muurk/termform/internal/form"
)

// ConfirmOverwrite asks, with a two-option menu, whether an existing file
// may be replaced. It returns false unless the operator picks Overwrite.
func ConfirmOverwrite(ctx context.Context, p *form.Prompter, path string) (bool, error) {
	f, err := form.New().
		Add("overwrite", form.Select(fmt.Sprintf("%s already exists. Overwrite it?", path),
			form.Opt(false, "Keep existing file"),
			form.Opt(true, "Overwrite"),
		)).
		Build()
	if err != nil {
		return false, err
	}
	if err := f.Fill(ctx, p); err != nil {
		return false, err
	}
	return form.Value[bool](f, "overwrite")
}

// KeptExisting builds the warning shown when an overwrite is declined.
func KeptExisting(path string) *Result {
	return NewWarningResult("Kept existing definition", []Detail{
		{Key: "Path", Value: path},
		{Key: "Replace with", Value: "termform init <name> --force"},
	})
}
