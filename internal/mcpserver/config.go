package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/shapekit/internal/options"
	"github.com/erraggy/shapekit/keypath"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Path and merge tool defaults.
	MaxDepth int
	LeafOnly bool

	// Parametrize tool defaults.
	OpenMarker  string
	CloseMarker string

	// Input limits.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SHAPEKIT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	c := &serverConfig{
		MaxDepth:      envInt("SHAPEKIT_MAX_DEPTH", keypath.DefaultMaxDepth),
		LeafOnly:      envBool("SHAPEKIT_LEAF_ONLY", false),
		OpenMarker:    envString("SHAPEKIT_OPEN_MARKER", "{{"),
		CloseMarker:   envString("SHAPEKIT_CLOSE_MARKER", "}}"),
		MaxInlineSize: int64(envInt("SHAPEKIT_MAX_INLINE_SIZE", 10*1024*1024)),
	}
	if err := options.ValidateMarkers(c.OpenMarker, c.CloseMarker); err != nil {
		slog.Warn("invalid marker env vars, using defaults", "error", err)
		c.OpenMarker, c.CloseMarker = "{{", "}}"
	}
	return c
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
