package config

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/terminal"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}
	if !strings.Contains(configDir, "termform") {
		t.Errorf("GetConfigDir() = %v, should contain 'termform'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestResolveFormPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	existing := filepath.Join(t.TempDir(), "signup")
	if err := os.WriteFile(existing, []byte("version: 1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"bare name", "signup", filepath.Join(xdg, "termform", "forms", "signup.yaml")},
		{"existing file", existing, existing},
		{"file with extension", "missing.yaml", "missing.yaml"},
		{"relative path", "forms/missing", "forms/missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFormPath(tt.arg)
			if err != nil {
				t.Fatalf("ResolveFormPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveFormPath(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}

	if _, err := ResolveFormPath(""); err == nil {
		t.Error("ResolveFormPath(\"\") should fail")
	}
}

const signupYAML = `
version: 1
title: Sign up
fields:
  - name: name
    prompt: "Name:"
    rules:
      - rule: not_empty
        message: Name cannot be empty
      - rule: valid_name
        message: Name cannot contain numbers
  - name: age
    prompt: "Age:"
    type: uint
  - name: nickname
    prompt: "Nickname:"
    kind: optional
  - name: plan
    prompt: Pick a plan
    kind: select
    type: int
    options:
      - {value: "1", label: Basic}
      - {value: "2", label: Pro}
  - name: tags
    prompt: Pick tags
    kind: multiselect
    limit: 2
    options:
      - {value: a}
      - {value: b}
      - {value: c}
`

func TestParseDefinition(t *testing.T) {
	def, err := ParseDefinition([]byte(signupYAML))
	if err != nil {
		t.Fatalf("ParseDefinition() error = %v", err)
	}

	if def.Title != "Sign up" {
		t.Errorf("Title = %q, want Sign up", def.Title)
	}
	if len(def.Fields) != 5 {
		t.Fatalf("len(Fields) = %d, want 5", len(def.Fields))
	}
	want := FieldDef{
		Name:   "plan",
		Prompt: "Pick a plan",
		Kind:   KindSelect,
		Type:   TypeInt,
		Options: []OptionDef{
			{Value: "1", Label: "Basic"},
			{Value: "2", Label: "Pro"},
		},
	}
	if diff := cmp.Diff(want, def.Fields[3]); diff != "" {
		t.Errorf("Fields[3] mismatch (-want +got):\n%s", diff)
	}
	if errs := def.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestParseDefinition_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"unknown key", "version: 1\nfeilds: []\n"},
		{"bad yaml", "version: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDefinition([]byte(tt.data)); err == nil {
				t.Error("ParseDefinition() should fail")
			}
		})
	}
}

func TestDefinition_Validate(t *testing.T) {
	field := func(mod func(*FieldDef)) *Definition {
		fd := FieldDef{Name: "x", Prompt: "X:"}
		mod(&fd)
		return &Definition{Version: 1, Fields: []FieldDef{fd}}
	}

	tests := []struct {
		name    string
		def     *Definition
		wantErr string
	}{
		{"bad version", &Definition{Version: 2, Fields: []FieldDef{{Name: "x", Prompt: "X:"}}}, "unsupported definition version"},
		{"no fields", &Definition{Version: 1}, "no fields"},
		{"missing name", field(func(fd *FieldDef) { fd.Name = "" }), "name is required"},
		{"missing prompt", field(func(fd *FieldDef) { fd.Prompt = "" }), "prompt is required"},
		{"unknown kind", field(func(fd *FieldDef) { fd.Kind = "slider" }), "unknown kind"},
		{"unknown type", field(func(fd *FieldDef) { fd.Type = "complex" }), "unknown type"},
		{"unknown rule", field(func(fd *FieldDef) { fd.Rules = []RuleDef{{Rule: "palindrome"}} }), "rule 1"},
		{"options on text", field(func(fd *FieldDef) { fd.Options = []OptionDef{{Value: "a"}} }), "options are not allowed"},
		{"select without options", field(func(fd *FieldDef) { fd.Kind = KindSelect }), "at least one option"},
		{"rules on select", field(func(fd *FieldDef) {
			fd.Kind = KindSelect
			fd.Options = []OptionDef{{Value: "a"}}
			fd.Rules = []RuleDef{{Rule: "not_empty"}}
		}), "rules are not allowed"},
		{"negative limit", field(func(fd *FieldDef) {
			fd.Kind = KindMultiSelect
			fd.Options = []OptionDef{{Value: "a"}}
			fd.Limit = -1
		}), "limit must not be negative"},
		{"limit on select", field(func(fd *FieldDef) {
			fd.Kind = KindSelect
			fd.Options = []OptionDef{{Value: "a"}}
			fd.Limit = 1
		}), "only allowed on multiselect"},
		{"option value wrong type", field(func(fd *FieldDef) {
			fd.Kind = KindSelect
			fd.Type = TypeInt
			fd.Options = []OptionDef{{Value: "one"}}
		}), "not a valid int"},
		{"duplicate name", &Definition{Version: 1, Fields: []FieldDef{
			{Name: "x", Prompt: "X:"}, {Name: "x", Prompt: "Again:"},
		}}, "duplicate field name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.def.Validate()
			if len(errs) == 0 {
				t.Fatalf("Validate() returned no errors, want %q", tt.wantErr)
			}
			var found bool
			for _, err := range errs {
				if strings.Contains(err.Error(), tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() = %v, want an error containing %q", errs, tt.wantErr)
			}
			if _, err := tt.def.Build(); err == nil {
				t.Error("Build() should fail for an invalid definition")
			}
		})
	}
}

func TestDefinition_BuildAndFill(t *testing.T) {
	def, err := ParseDefinition([]byte(signupYAML))
	if err != nil {
		t.Fatalf("ParseDefinition() error = %v", err)
	}
	f, err := def.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if diff := cmp.Diff([]string{"name", "age", "nickname", "plan", "tags"}, f.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	// name rejected once, age, blank nickname, plan Pro, tags a and c
	input := "Ann1\nAnn\n41\n\n\x1b[B\n \x1b[B\x1b[B \n"
	var out strings.Builder
	c := terminal.NewConsole(strings.NewReader(input), &out)
	if err := f.Fill(context.Background(), form.NewPrompter(c)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	if !strings.Contains(out.String(), "Name cannot contain numbers") {
		t.Error("validation message from the definition was not shown")
	}
	if age, err := form.Value[uint](f, "age"); err != nil || age != 41 {
		t.Errorf("Value[uint](age) = %d, %v, want 41, nil", age, err)
	}
	if nick, err := form.Value[string](f, "nickname"); err != nil || nick != "" {
		t.Errorf("Value[string](nickname) = %q, %v, want empty, nil", nick, err)
	}
	if plan, err := form.Value[int](f, "plan"); err != nil || plan != 2 {
		t.Errorf("Value[int](plan) = %d, %v, want 2, nil", plan, err)
	}
	tags, err := form.Values[string](f, "tags")
	if err != nil {
		t.Fatalf("Values[string](tags) error = %v", err)
	}
	if diff := cmp.Diff([]string{"a", "c"}, tags); diff != "" {
		t.Errorf("Values[string](tags) mismatch (-want +got):\n%s", diff)
	}
}

func TestExampleDefinition_RoundTrip(t *testing.T) {
	def := ExampleDefinition()
	if errs := def.Validate(); len(errs) != 0 {
		t.Fatalf("ExampleDefinition().Validate() = %v", errs)
	}

	path := filepath.Join(t.TempDir(), "nested", "example.yaml")
	if err := def.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	loaded, err := LoadDefinition(path)
	if err != nil {
		t.Fatalf("LoadDefinition() error = %v", err)
	}
	if diff := cmp.Diff(def, loaded); diff != "" {
		t.Errorf("LoadDefinition() mismatch (-want +got):\n%s", diff)
	}

	f, err := loaded.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if f.Len() != len(def.Fields) {
		t.Errorf("Len() = %d, want %d", f.Len(), len(def.Fields))
	}
}

func TestLoadDefinition_Missing(t *testing.T) {
	if _, err := LoadDefinition(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadDefinition() should fail for a missing file")
	}
}
