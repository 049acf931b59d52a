package widget

// Style decorates the pieces of a rendered menu. Every hook receives plain
// text and returns the text to print, so styling never changes what is
// selected.
type Style struct {
	Prompt  func(string) string // Menu title line
	Hint    func(string) string // Key help line (multi-select)
	Current func(string) string // Line under the cursor
	Option  func(string) string // Every other line
}

// PlainStyle renders without decoration.
func PlainStyle() Style {
	return Style{
		Prompt:  identity,
		Hint:    identity,
		Current: identity,
		Option:  identity,
	}
}

func identity(s string) string { return s }

func (s Style) withDefaults() Style {
	if s.Prompt == nil {
		s.Prompt = identity
	}
	if s.Hint == nil {
		s.Hint = identity
	}
	if s.Current == nil {
		s.Current = identity
	}
	if s.Option == nil {
		s.Option = identity
	}
	return s
}
