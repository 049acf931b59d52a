package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/ui"
)

// Output formats for filled forms
const (
	formatDetailed = "detailed"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatDetailed, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected detailed, json or yaml)", format)
	}
}

// writeResult prints the filled values. The detailed format is rendered
// through Bubble Tea when w is a terminal.
func writeResult(w io.Writer, title string, f *form.Form, format string, tty bool) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(f.Snapshot(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case formatYAML:
		node, err := snapshotNode(f)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return enc.Close()

	default:
		summary := ui.FormSummary(title, f).Render()
		if tty {
			return ui.RenderOnce(w, summary+"\n")
		}
		_, err := fmt.Fprintln(w, summary)
		return err
	}
}

// snapshotNode builds a YAML mapping that keeps fields in declaration
// order. Duplicate names keep the first field's value.
func snapshotNode(f *form.Form) (*yaml.Node, error) {
	values := f.Snapshot()
	node := &yaml.Node{Kind: yaml.MappingNode}
	seen := make(map[string]bool, len(values))

	for _, name := range f.Names() {
		v, ok := values[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true

		var value yaml.Node
		if err := value.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode field %s: %w", name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&value,
		)
	}
	return node, nil
}
