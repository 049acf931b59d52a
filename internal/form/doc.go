// Package form provides the field registry that drives interactive data
// entry and hands typed values back to the caller.
//
// A Form is an ordered list of named fields. Fields come in a closed set of
// kinds:
//
//   - Text: free text parsed into T, with an optional validation chain
//   - OptionalText: like Text, but blank input stores None
//   - Select: one value chosen from a list of labelled options
//   - MultiSelect: one or more values chosen from labelled options, with an
//     optional cap on how many can be chosen
//
// # Building and Filling
//
//	f := form.New().
//	    Add("name", form.Text[string]("Enter name:", nameRules)).
//	    Add("age", form.Text[uint32]("Enter age:", nil)).
//	    Add("gender", form.Select("Select your gender",
//	        form.Opt("M", "Male"), form.Opt("F", "Female"))).
//	    MustBuild()
//
//	if err := f.Fill(ctx, form.NewPrompter(terminal.NewStdio())); err != nil {
//	    return err
//	}
//
// Fill visits fields in declaration order. Text fields re-prompt until the
// input passes validation and parses; only I/O failures end the loop early.
// The first field that fails aborts the whole Fill.
//
// # Typed Retrieval
//
// Values are read back by name with the expected Go type:
//
//	name, err := form.Value[string](f, "name")
//	age, err := form.Value[uint32](f, "age")
//	hobbies, err := form.Values[string](f, "hobbies")
//
// Retrieval switches over the field kind and checks the stored type. Asking
// for a type the field does not hold returns an incorrect-type error and
// leaves the form untouched.
package form
