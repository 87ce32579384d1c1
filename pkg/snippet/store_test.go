package snippet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCollection() Collection {
	return Collection{
		"Save Cancel Button": {
			Body:        []string{"<save-cancel-button ", "></save-cancel-button>", "$1"},
			Description: "A code snippet for Save Cancel Button Component.",
			Prefix:      []string{"save-cancel-button"},
			Scope:       "html",
		},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.code-snippets")

	original := sampleCollection()
	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestStore_LoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.code-snippets"))
	require.NoError(t, err)
	assert.Empty(t, c)
	assert.NotNil(t, c)
}

func TestStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.code-snippets")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestStore_LoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.code-snippets")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse snippet JSON")
}

func TestStore_SaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".vscode", "nested", "out.code-snippets")

	require.NoError(t, Save(path, sampleCollection()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_SavedShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.code-snippets")
	require.NoError(t, Save(path, sampleCollection()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Field names are a compatibility contract with VSCode.
	text := string(data)
	assert.Contains(t, text, `"body"`)
	assert.Contains(t, text, `"description"`)
	assert.Contains(t, text, `"prefix"`)
	assert.Contains(t, text, `"scope"`)
	assert.True(t, len(data) > 0 && data[len(data)-1] == '\n', "file should end with a newline")
}

func TestStore_UserSnippetsDir(t *testing.T) {
	dir, err := UserSnippetsDir()
	if err != nil {
		t.Skipf("user snippets dir unavailable: %v", err)
	}
	assert.True(t, filepath.IsAbs(dir))
	assert.Equal(t, "snippets", filepath.Base(dir))
}

func TestStore_MergeLastWriterWins(t *testing.T) {
	base := Collection{
		"Widget": {Body: []string{"old"}, Scope: "html"},
		"Panel":  {Body: []string{"panel"}, Scope: "html"},
	}
	update := Collection{
		"Widget": {Body: []string{"new"}, Scope: "html"},
		"Badge":  {Body: []string{"badge"}, Scope: "html"},
	}

	base.Merge(update)

	assert.Len(t, base, 3)
	assert.Equal(t, []string{"new"}, base["Widget"].Body)
	assert.Equal(t, []string{"panel"}, base["Panel"].Body)
	assert.Equal(t, []string{"badge"}, base["Badge"].Body)
}
