package snippet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultFileName is the workspace-relative location generated
// snippets are written to unless an output path is configured.
const DefaultFileName = ".vscode/snippetgen.code-snippets"

// Load reads a snippet collection from path. A missing or empty file
// is not an error: generation starts from an empty collection and
// merges into whatever already exists.
func Load(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Collection{}, nil
		}
		return nil, fmt.Errorf("failed to read snippet file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses a snippet collection from raw JSON bytes.
func LoadBytes(data []byte) (Collection, error) {
	if len(data) == 0 {
		return Collection{}, nil
	}

	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse snippet JSON: %w", err)
	}
	if c == nil {
		c = Collection{}
	}
	return c, nil
}

// Save writes the collection to path, creating parent directories as
// needed. Output is two-space indented JSON with a trailing newline so
// the file diffs cleanly under version control.
func Save(path string, c Collection) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snippets: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create snippet directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snippet file: %w", err)
	}
	return nil
}

// UserSnippetsDir returns the VSCode per-user snippets directory for
// the current platform. Snippets saved there apply to every workspace.
func UserSnippetsDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", "Code", "User", "snippets"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}
		return filepath.Join(appData, "Code", "User", "snippets"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, ".config", "Code", "User", "snippets"), nil
	}
}
