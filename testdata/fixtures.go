// Package testdata provides JSON fixtures for client tests. The files
// mirror responses from the UniFi Network Integration API.
package testdata

import (
	"embed"
	"encoding/json"
	"testing"
)

// FS embeds all JSON fixture files.
//
//go:embed **/*.json
var FS embed.FS

// Load reads and returns fixture content as a string. The path is
// relative to the testdata directory (e.g. "sites/list_success.json").
func Load(t *testing.T, path string) string {
	t.Helper()

	data, err := FS.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", path, err)
	}

	return string(data)
}

// LoadJSON reads a fixture and unmarshals it into v.
func LoadJSON(t *testing.T, path string, v any) {
	t.Helper()

	if err := json.Unmarshal([]byte(Load(t, path)), v); err != nil {
		t.Fatalf("failed to unmarshal fixture %s: %v", path, err)
	}
}
