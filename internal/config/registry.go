package config

import (
	"bytes"
	"errors"
	"io"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appName  = "termform"
	formsDir = "forms"
	formExt  = ".yaml"
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/termform or $HOME/.config/termform
//   - macOS: $HOME/.config/termform (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\termform
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetFormsDir returns the directory named definitions are stored in.
func GetFormsDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, formsDir), nil
}

// ResolveFormPath turns a command-line argument into a definition path. An
// argument that names an existing file, or looks like a path, is used as-is.
// Anything else is a definition name looked up in the forms directory.
func ResolveFormPath(arg string) (string, error) {
	if arg == "" {
		return "", errors.New("form name must not be empty")
	}
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}
	if strings.ContainsRune(arg, filepath.Separator) || strings.ContainsRune(arg, '/') || filepath.Ext(arg) != "" {
		return arg, nil
	}

	dir, err := GetFormsDir()
	if err != nil {
		return "", fmt.Errorf("failed to get forms directory: %w", err)
	}
	return filepath.Join(dir, arg+formExt), nil
}

// LoadDefinition reads and parses a definition file. The definition is not
// validated; call Validate or Build for that.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form definition: %w", err)
	}
	def, err := ParseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// ParseDefinition parses a YAML definition. Unknown keys are rejected so
// that typos do not silently drop rules.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("form definition is empty")
		}
		return nil, fmt.Errorf("failed to parse form definition: %w", err)
	}
	return &def, nil
}

// Save writes the definition to path. It writes to a temporary file first
// and renames it into place.
func (d *Definition) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create form directory: %w", err)
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal form definition: %w", err)
	}

	header := []byte(`# termform form definition
# Fill it with: termform fill ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary form file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save form file: %w", err)
	}

	return nil
}
