// Package testutil provides plain-data fixtures and file helpers for tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/shapekit/internal/fileutil"
)

// NewServiceConfig returns a small nested configuration document.
//
//	debug: false
//	server:
//	  host: localhost
//	  port: 8080
//	  tls:
//	    enabled: true
//	tags: [api, internal]
func NewServiceConfig() map[string]any {
	return map[string]any{
		"debug": false,
		"server": map[string]any{
			"host": "localhost",
			"port": 8080,
			"tls": map[string]any{
				"enabled": true,
			},
		},
		"tags": []any{"api", "internal"},
	}
}

// ServiceConfigPaths lists every path of NewServiceConfig in sorted order.
func ServiceConfigPaths() []string {
	return []string{"debug", "server", "server.host", "server.port", "server.tls", "server.tls.enabled", "tags"}
}

// NewChain returns an object nested depth levels deep under key, ending in
// {"leaf": true}. NewChain("a", 2) is {"a": {"a": {"leaf": true}}}.
func NewChain(key string, depth int) map[string]any {
	doc := map[string]any{"leaf": true}
	for i := 0; i < depth; i++ {
		doc = map[string]any{key: doc}
	}
	return doc
}

// WriteTempYAML marshals doc to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTemp(t, "doc.yaml", data)
}

// WriteTempJSON marshals doc to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTemp(t, "doc.json", data)
}

// WriteTemp writes data to name inside a fresh temporary directory.
func WriteTemp(t *testing.T, name string, data []byte) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, fileutil.OwnerReadWrite); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}
