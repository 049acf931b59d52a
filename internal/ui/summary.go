package ui

import "github.com/muurk/termform/internal/form"

// NotFilledText is shown in summaries for fields without a value.
const NotFilledText = "(not filled)"

// FormSummary builds a success box listing every field in declaration
// order.
func FormSummary(title string, f *form.Form) *Result {
	details := make([]Detail, 0, f.Len())
	for _, name := range f.Names() {
		value, err := f.Display(name)
		if err != nil {
			value = NotFilledText
		}
		details = append(details, Detail{Key: name, Value: value})
	}
	return NewSuccessResult(title, details)
}

// FillFailure builds the failure box shown when a form could not be filled.
func FillFailure(err error) *Result {
	tips := []string{
		"Input ended before every field was answered",
		"Run with --log-level debug to see each key and rejected input",
	}
	return NewFailureResult("Form not completed", err, tips)
}
