package convert

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer persists a converted component
type Writer interface {
	WriteFile(path string, data []byte) error
}

// FSWriter writes to the local file system, creating parent directories
type FSWriter struct{}

func (FSWriter) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:gosec // G301: output directories are shared with the project
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // G306: converted sources are not secret
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// OutputPath is where the conversion of source is written: the source
// itself when overwriting, otherwise source under dest.
func OutputPath(dest, source string, overwrite bool) string {
	if overwrite {
		return source
	}
	return filepath.Join(dest, source)
}
