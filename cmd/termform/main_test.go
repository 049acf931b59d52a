package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/termform/internal/config"
	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/optional"
	"github.com/muurk/termform/internal/terminal"
)

// demoInput answers every demo field, with one rejected name and one
// rejected custom value along the way.
const demoInput = "John123\nJohn\njohn@example.com\n30\nshort\nlonger value\n1.8\ntrue\nJ\n\n" +
	"\x1b[B\n" + // gender: Female
	" \x1b[B \x1b[B \n" // hobbies: reading, sports; music refused by the limit

func filledDemo(t *testing.T) *form.Form {
	t.Helper()
	f := demoForm()
	c := terminal.NewConsole(strings.NewReader(demoInput), &bytes.Buffer{})
	if err := f.Fill(context.Background(), form.NewPrompter(c)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	return f
}

func TestDemo_ReadBack(t *testing.T) {
	r, err := readDemo(filledDemo(t))
	if err != nil {
		t.Fatalf("readDemo() error = %v", err)
	}

	want := demoResult{
		Name:      "John",
		Email:     "john@example.com",
		Age:       30,
		Custom:    "longer value",
		Height:    1.8,
		IsStudent: true,
		Initial:   'J',
		Width:     0,
		Gender:    "F",
		Hobbies:   []string{"reading", "sports"},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("readDemo() mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessWidth(t *testing.T) {
	tests := []struct {
		name  string
		width optional.Optional[uint32]
		want  uint32
	}{
		{"none", optional.None[uint32](), 0},
		{"some", optional.Some[uint32](10), 30},
		{"zero", optional.Some[uint32](0), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := processWidth(tt.width); got != tt.want {
				t.Errorf("processWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWriteResult_JSON(t *testing.T) {
	f := filledDemo(t)
	var buf bytes.Buffer
	if err := writeResult(&buf, "Demo", f, formatJSON, false); err != nil {
		t.Fatalf("writeResult() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got["name"] != "John" || got["gender"] != "F" {
		t.Errorf("unexpected values: %v", got)
	}
	if got["width"] != nil {
		t.Errorf("width = %v, want null", got["width"])
	}
	if got["initial"] != "J" {
		t.Errorf("initial = %v, want \"J\"", got["initial"])
	}
}

func TestWriteResult_YAMLKeepsOrder(t *testing.T) {
	f := filledDemo(t)
	var buf bytes.Buffer
	if err := writeResult(&buf, "Demo", f, formatYAML, false); err != nil {
		t.Fatalf("writeResult() error = %v", err)
	}

	out := buf.String()
	last := -1
	for _, name := range f.Names() {
		idx := strings.Index(out, name+":")
		if idx < 0 {
			t.Fatalf("field %s missing from output:\n%s", name, out)
		}
		if idx < last {
			t.Errorf("field %s out of order:\n%s", name, out)
		}
		last = idx
	}
	if !strings.Contains(out, "initial: J\n") {
		t.Errorf("initial should be written as a character:\n%s", out)
	}
}

func TestWriteResult_RuneFieldFromDefinition(t *testing.T) {
	def, err := config.ParseDefinition([]byte(`version: 1
fields:
  - name: initial
    prompt: "Initial:"
    type: rune
  - name: grade
    prompt: "Grade:"
    kind: select
    type: rune
    options:
      - value: A
      - value: B
`))
	if err != nil {
		t.Fatalf("ParseDefinition() error = %v", err)
	}
	f, err := def.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	c := terminal.NewConsole(strings.NewReader("K\n\x1b[B\n"), &bytes.Buffer{})
	if err := f.Fill(context.Background(), form.NewPrompter(c)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	var buf bytes.Buffer
	if err := writeResult(&buf, "Grades", f, formatJSON, false); err != nil {
		t.Fatalf("writeResult() error = %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	want := map[string]any{"initial": "K", "grade": "B"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("writeResult() mismatch (-want +got):\n%s", diff)
	}
	if shown, _ := f.Display("initial"); shown != "K" {
		t.Errorf("Display(initial) = %q, want K", shown)
	}
}

func TestWriteResult_Detailed(t *testing.T) {
	f := filledDemo(t)
	var buf bytes.Buffer
	if err := writeResult(&buf, "Demo", f, formatDetailed, false); err != nil {
		t.Fatalf("writeResult() error = %v", err)
	}
	if !strings.Contains(buf.String(), "[reading, sports]") {
		t.Errorf("summary missing hobbies:\n%s", buf.String())
	}
}

func TestCheckFormat(t *testing.T) {
	for _, format := range []string{formatDetailed, formatJSON, formatYAML} {
		if err := checkFormat(format); err != nil {
			t.Errorf("checkFormat(%q) error = %v", format, err)
		}
	}
	if err := checkFormat("xml"); err == nil {
		t.Error("checkFormat(xml) should fail")
	}
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := config.ExampleDefinition().Save(good); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("version: 1\nfields:\n  - name: x\n    kind: slider\n"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
		want    string
	}{
		{"valid", good, false, "OK (10 fields)"},
		{"invalid", bad, true, "unknown kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs([]string{"validate", tt.path})
			defer rootCmd.SetArgs(nil)

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.want)
			}
		})
	}
}
