package form

import "fmt"

// Kind identifies which field variant a Field is.
type Kind int

const (
	KindText Kind = iota
	KindOptionalText
	KindSelect
	KindMultiSelect
)

// String returns the kind name used in logs and form definitions
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindOptionalText:
		return "optional"
	case KindSelect:
		return "select"
	case KindMultiSelect:
		return "multiselect"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}
