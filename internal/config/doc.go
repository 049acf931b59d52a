// Package config loads form definitions from YAML files.
//
// A definition lists fields in order, each with a kind, a value type, and
// either validation rules (text fields) or options (select fields). Build
// turns a definition into a *form.Form ready to fill.
//
// # Definition Location
//
// Named definitions live in the forms directory under the platform config
// directory:
//   - Linux: $XDG_CONFIG_HOME/termform/forms or $HOME/.config/termform/forms
//   - macOS: $HOME/.config/termform/forms
//   - Windows: %LOCALAPPDATA%\termform\forms
//
// # Example
//
//	version: 1
//	title: Sign up
//	fields:
//	  - name: name
//	    prompt: "Enter your name:"
//	    rules:
//	      - rule: not_empty
//	        message: Name cannot be empty
//	      - rule: min_length
//	        arg: 2
//	  - name: age
//	    prompt: "Enter your age:"
//	    type: uint
//	  - name: hobbies
//	    prompt: Select up to 2 hobbies
//	    kind: multiselect
//	    limit: 2
//	    options:
//	      - {value: reading, label: Reading}
//	      - {value: gaming, label: Gaming}
//
// Loading and building:
//
//	path, err := config.ResolveFormPath("signup")
//	def, err := config.LoadDefinition(path)
//	f, err := def.Build()
package config
