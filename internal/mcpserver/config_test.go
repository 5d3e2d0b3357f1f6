package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearSHAPEKITEnv clears all SHAPEKIT_* env vars to isolate tests from the ambient environment.
func clearSHAPEKITEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SHAPEKIT_MAX_DEPTH", "SHAPEKIT_LEAF_ONLY",
		"SHAPEKIT_OPEN_MARKER", "SHAPEKIT_CLOSE_MARKER",
		"SHAPEKIT_MAX_INLINE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearSHAPEKITEnv(t)

	c := loadConfig()

	assert.Equal(t, 10, c.MaxDepth)
	assert.False(t, c.LeafOnly)
	assert.Equal(t, "{{", c.OpenMarker)
	assert.Equal(t, "}}", c.CloseMarker)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearSHAPEKITEnv(t)
	t.Setenv("SHAPEKIT_MAX_DEPTH", "3")
	t.Setenv("SHAPEKIT_LEAF_ONLY", "true")
	t.Setenv("SHAPEKIT_OPEN_MARKER", "<")
	t.Setenv("SHAPEKIT_CLOSE_MARKER", ">")
	t.Setenv("SHAPEKIT_MAX_INLINE_SIZE", "2048")

	c := loadConfig()

	assert.Equal(t, 3, c.MaxDepth)
	assert.True(t, c.LeafOnly)
	assert.Equal(t, "<", c.OpenMarker)
	assert.Equal(t, ">", c.CloseMarker)
	assert.Equal(t, int64(2048), c.MaxInlineSize)
}

func TestLoadConfig_InvalidFallsBack(t *testing.T) {
	clearSHAPEKITEnv(t)
	t.Setenv("SHAPEKIT_MAX_DEPTH", "-1")
	t.Setenv("SHAPEKIT_LEAF_ONLY", "maybe")
	t.Setenv("SHAPEKIT_MAX_INLINE_SIZE", "lots")

	c := loadConfig()

	assert.Equal(t, 10, c.MaxDepth)
	assert.False(t, c.LeafOnly)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
}

func TestEnvString(t *testing.T) {
	t.Setenv("SHAPEKIT_TEST_STRING", "")
	assert.Equal(t, "dflt", envString("SHAPEKIT_TEST_STRING", "dflt"))
	t.Setenv("SHAPEKIT_TEST_STRING", "set")
	assert.Equal(t, "set", envString("SHAPEKIT_TEST_STRING", "dflt"))
}
