package form

import "context"

// Field is one prompt plus its stored value. The set of implementations is
// closed: TextField and the two choice fields, told apart by Kind.
type Field interface {
	Kind() Kind
	Prompt() string
	Filled() bool
	// Fill prompts until a value is accepted. It stores the value only on
	// success and returns an error only for I/O failures.
	Fill(ctx context.Context, p *Prompter) error
	// Display renders the stored value, failing before Fill.
	Display() (string, error)
	// Snapshot returns the stored value for serialization.
	Snapshot() (any, bool)
}
