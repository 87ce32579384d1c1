package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInit_WritesConfig(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, runInit(nil))

	data, err := os.ReadFile(configFileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "root: ./src")
	assert.Contains(t, string(data), "log_level")
}

func TestRunInit_RefusesToOverwrite(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(configFileName, []byte("root: ./elsewhere\n"), 0644))

	err := runInit(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The existing file is untouched.
	data, err := os.ReadFile(configFileName)
	require.NoError(t, err)
	assert.Equal(t, "root: ./elsewhere\n", string(data))
}

func TestRunInit_ForceOverwrites(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(configFileName, []byte("root: ./elsewhere\n"), 0644))

	require.NoError(t, runInit([]string{"--force"}))

	data, err := os.ReadFile(configFileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "root: ./src")
}
