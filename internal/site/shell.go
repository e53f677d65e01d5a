package site

import (
	"fmt"
	"os"

	"github.com/ziadkadry99/folio/internal/render"
)

// ReadShell returns the page shell at path, or the built-in page when path
// is empty.
func ReadShell(path string) ([]byte, error) {
	if path == "" {
		return []byte(render.DefaultShell), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page shell %s: %w", path, err)
	}
	return data, nil
}
