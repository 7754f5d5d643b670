package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile creates dir/name with content and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteSparseFile creates dir/name with the given size without writing its bytes.
func WriteSparseFile(t *testing.T, dir, name string, size int64) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()
	if err := f.Truncate(size); err != nil {
		t.Fatalf("truncate %s: %v", path, err)
	}
	return path
}

// ContainsLine checks if any line of output contains the given substring.
func ContainsLine(output, substr string) bool {
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
