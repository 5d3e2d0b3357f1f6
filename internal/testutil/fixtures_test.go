package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestNewServiceConfig_FreshCopies(t *testing.T) {
	a := NewServiceConfig()
	b := NewServiceConfig()
	a["server"].(map[string]any)["port"] = 1
	assert.Equal(t, 8080, b["server"].(map[string]any)["port"])
	assert.Len(t, ServiceConfigPaths(), 7)
}

func TestNewChain(t *testing.T) {
	assert.Equal(t, map[string]any{"leaf": true}, NewChain("a", 0))
	assert.Equal(t,
		map[string]any{"a": map[string]any{"a": map[string]any{"leaf": true}}},
		NewChain("a", 2))
}

func TestWriteTempYAML(t *testing.T) {
	path := WriteTempYAML(t, map[string]any{"a": 1})
	assert.Equal(t, ".yaml", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, map[string]any{"a": 1}, got)
}

func TestWriteTempJSON(t *testing.T) {
	path := WriteTempJSON(t, map[string]any{"a": "b"})
	assert.Equal(t, ".json", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, map[string]any{"a": "b"}, got)
}
