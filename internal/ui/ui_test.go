package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/terminal"
)

func TestHeader_ParamsSorted(t *testing.T) {
	h := NewHeader("Sign up", "termform fill signup", map[string]string{
		"Source": "signup.yaml",
		"Fields": "3",
	}).SetWidth(80)

	out := h.Render()
	if !strings.Contains(out, "SIGN UP") {
		t.Errorf("Render() missing upper-cased title:\n%s", out)
	}
	fields, source := strings.Index(out, "Fields:"), strings.Index(out, "Source:")
	if fields < 0 || source < 0 || fields > source {
		t.Errorf("params should be listed in key order:\n%s", out)
	}
}

func TestFormSummary(t *testing.T) {
	f := form.New().
		Add("name", form.Text[string]("Name:", nil)).
		Add("age", form.Text[int]("Age:", nil)).
		MustBuild()
	c := terminal.NewConsole(strings.NewReader("Ann\n"), &bytes.Buffer{})
	// age is left unfilled by the end of input
	_ = f.Fill(context.Background(), form.NewPrompter(c))

	r := FormSummary("Sign up", f)
	if len(r.Details) != 2 {
		t.Fatalf("len(Details) = %d, want 2", len(r.Details))
	}
	if r.Details[0] != (Detail{Key: "name", Value: "Ann"}) {
		t.Errorf("Details[0] = %+v, want name=Ann", r.Details[0])
	}
	if r.Details[1].Value != NotFilledText {
		t.Errorf("Details[1].Value = %q, want %q", r.Details[1].Value, NotFilledText)
	}

	out := r.SetWidth(80).Render()
	if !strings.Contains(out, "SUCCESS") || !strings.Contains(out, "Ann") {
		t.Errorf("Render() = %s", out)
	}
}

func TestFillFailure(t *testing.T) {
	out := FillFailure(errors.New("input ended")).SetWidth(80).Render()
	for _, want := range []string{"FAILED", "input ended", "Troubleshooting:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
}

func TestProgress_Render(t *testing.T) {
	p := NewProgress().SetWidth(80)

	out := p.Render(2, 10, "age")
	if !strings.Contains(out, "[3/10]") || !strings.Contains(out, "age") {
		t.Errorf("Render() = %q", out)
	}

	var buf bytes.Buffer
	p.Hook()(&buf, 0, 1, "name")
	if !strings.Contains(buf.String(), "[1/1]") {
		t.Errorf("Hook() wrote %q", buf.String())
	}
}

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"keep is the default", "\n", false},
		{"overwrite", "\x1b[B\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := terminal.NewConsole(strings.NewReader(tt.input), &out)
			got, err := ConfirmOverwrite(context.Background(), form.NewPrompter(c, form.WithTheme(FormTheme())), "a.yaml")
			if err != nil {
				t.Fatalf("ConfirmOverwrite() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ConfirmOverwrite() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "a.yaml already exists") {
				t.Errorf("prompt not shown: %q", out.String())
			}
		})
	}
}

func TestKeptExisting(t *testing.T) {
	r := KeptExisting("a.yaml")
	if r.Type != ResultWarning {
		t.Errorf("Type = %v, want ResultWarning", r.Type)
	}

	var buf bytes.Buffer
	NewPrinter(&buf).SetWidth(80).PrintResult(r)
	out := buf.String()
	for _, want := range []string{WarningMarker, "WARNING", "Kept existing definition", "a.yaml", "--force"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOnce(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderOnce(&buf, "hello summary"); err != nil {
		t.Fatalf("RenderOnce() error = %v", err)
	}
	if !strings.Contains(buf.String(), "hello summary") {
		t.Errorf("RenderOnce() wrote %q", buf.String())
	}
}
