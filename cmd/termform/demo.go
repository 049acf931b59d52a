package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/optional"
	"github.com/muurk/termform/internal/validation"
)

// demoCmd runs a form declared in code
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Fill the built-in demo form",
	Long: `Fill a ten-field demo form built with the Go API, then read every
value back with its type and print them.

The demo covers each field kind: validated text, typed text (integer,
float, bool, rune), an optional number, a single-choice menu and a
multiple-choice menu limited to two selections.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&outputFormat, "format", formatDetailed, "Output format (detailed, json, yaml)")
	demoCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar before each field")
}

// demoForm declares the demo fields.
func demoForm() *form.Form {
	notEmpty := func(msg string) validation.Rule {
		return validation.Rule{Predicate: validation.NotEmpty, Message: msg}
	}

	return form.New().
		Add("name", form.Text[string]("Enter name:", validation.New(
			notEmpty("Name cannot be empty"),
			validation.Rule{Predicate: validation.ValidName, Message: "Name cannot contain numbers"},
		))).
		Add("email", form.Text[string]("Enter email:", validation.New(
			notEmpty("Email cannot be empty"),
			validation.Rule{Predicate: validation.Email, Message: "Invalid email format"},
		))).
		Add("age", form.Text[uint32]("Enter age:", validation.New(notEmpty("Age cannot be empty")))).
		Add("custom", form.Text[string]("Enter custom value:", validation.New(
			notEmpty("Custom value cannot be empty"),
			validation.Rule{Predicate: longerThanFive, Message: "Custom value must be longer than 5 characters"},
		))).
		Add("height", form.Text[float64]("Enter height:", validation.New(notEmpty("Height cannot be empty")))).
		Add("is_student", form.Text[bool]("Are you a student (true/false):", validation.New(notEmpty("This field cannot be empty")))).
		Add("initial", form.Char("Enter your initial:", validation.New(notEmpty("Initial cannot be empty")))).
		Add("width", form.OptionalText[uint32]("Enter width (optional):", nil)).
		Add("gender", form.Select("Select your gender:",
			form.Opt("M", "Male"),
			form.Opt("F", "Female"),
			form.Opt("O", "Other"),
		)).
		Add("hobbies", form.MultiSelect("Select your hobbies:", 2,
			form.Opt("reading", "Reading"),
			form.Opt("sports", "Sports"),
			form.Opt("music", "Music"),
		)).
		MustBuild()
}

func longerThanFive(s string) bool {
	return len(s) > 5
}

// demoResult is the demo form read back with typed retrieval.
type demoResult struct {
	Name      string
	Email     string
	Age       uint32
	Custom    string
	Height    float64
	IsStudent bool
	Initial   rune
	Width     uint32
	Gender    string
	Hobbies   []string
}

// readDemo retrieves every demo value with its declared type.
func readDemo(f *form.Form) (demoResult, error) {
	var r demoResult
	var err error
	get := func(fn func() error) {
		if err == nil {
			err = fn()
		}
	}

	get(func() (e error) { r.Name, e = form.Value[string](f, "name"); return })
	get(func() (e error) { r.Email, e = form.Value[string](f, "email"); return })
	get(func() (e error) { r.Age, e = form.Value[uint32](f, "age"); return })
	get(func() (e error) { r.Custom, e = form.Value[string](f, "custom"); return })
	get(func() (e error) { r.Height, e = form.Value[float64](f, "height"); return })
	get(func() (e error) { r.IsStudent, e = form.Value[bool](f, "is_student"); return })
	get(func() (e error) { r.Initial, e = form.Value[rune](f, "initial"); return })
	get(func() error {
		width, e := form.Value[optional.Optional[uint32]](f, "width")
		r.Width = processWidth(width)
		return e
	})
	get(func() (e error) { r.Gender, e = form.Value[string](f, "gender"); return })
	get(func() (e error) { r.Hobbies, e = form.Values[string](f, "hobbies"); return })

	return r, err
}

// processWidth adds a margin of 20 to a given width; no width stays 0.
func processWidth(width optional.Optional[uint32]) uint32 {
	if !width.IsSome() {
		return 0
	}
	return optional.Add(width, optional.Some[uint32](20)).OrDefault()
}

func (r demoResult) String() string {
	return fmt.Sprintf("Name: %q, Email: %q, Age: %d, Custom: %q, Height: %v, Is Student: %t, Initial: %q, Width: %d, Gender: %q, Hobbies: %q",
		r.Name, r.Email, r.Age, r.Custom, r.Height, r.IsStudent, r.Initial, r.Width, r.Gender, r.Hobbies)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := checkFormat(outputFormat); err != nil {
		return err
	}

	f := demoForm()
	if err := fillAndReport(cmd.Context(), cmd, f, "Demo", map[string]string{
		"Fields": fmt.Sprint(f.Len()),
	}); err != nil {
		return err
	}

	if outputFormat != formatDetailed {
		return nil
	}
	r, err := readDemo(f)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r)
	return nil
}
