// Package validation provides the predicate chain applied to raw text input
// before it is parsed into a field value.
//
// A Validator is an ordered list of Rules. Each Rule pairs a string predicate
// with an optional message. Validation walks the rules in declaration order
// and stops at the first predicate that returns false:
//
//	v := validation.New(
//	    validation.Rule{Predicate: validation.NotEmpty, Message: "Name cannot be empty"},
//	    validation.Rule{Predicate: validation.ValidName, Message: "Name cannot contain numbers"},
//	)
//
//	if err := v.Validate("John123"); err != nil {
//	    fmt.Println(err) // Name cannot contain numbers
//	}
//
// # Predicates
//
// The package ships a small predicate library (NotEmpty, Email, IsDate,
// IsUUID, ...). Any func(string) bool can be used as a predicate. ByName
// resolves a predicate from its snake_case name, which is how YAML form
// definitions refer to them.
package validation
