package markdown

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path, following symlinks.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Open opens the named file for reading.
func (r *RealFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec // intentional: path supplied by the caller
}
