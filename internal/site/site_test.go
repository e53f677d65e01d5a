package site

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fixturePath returns testdata/portfolio/content.json from the project root.
func fixturePath(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	return filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "portfolio", "content.json")
}

// copyFixture writes the fixture document to dir and returns its path.
func copyFixture(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(fixturePath(t))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	path := filepath.Join(dir, "content.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
}
