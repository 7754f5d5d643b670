package markdown

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"
	"unicode/utf8"
)

// ErrInvalidUTF8 is the cause attached to a KindReadError when the file is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Reader validates and reads markdown files. The zero value uses the real file system.
type Reader struct {
	FS FileSystem // injected for testing
}

// Read validates path and returns the file content using the real file system.
func Read(path string) (string, error) {
	r := &Reader{}
	return r.Read(path)
}

// Read validates path and returns its content.
//
// Checks run in a fixed order and stop at the first failure:
// non-empty path, existence, regular file, extension, size, then read and decode.
// Any failure is returned as an *Error.
func (r *Reader) Read(path string) (string, error) {
	if strings.TrimSpace(path) == "" || strings.ContainsRune(path, 0) {
		return "", invalidPath()
	}

	fsys := r.fileSystem()

	info, err := fsys.Stat(path)
	if err != nil {
		return "", classifyStatError(path, err)
	}

	if !info.Mode().IsRegular() {
		return "", notAFile(path)
	}

	if !IsMarkdownFile(path) {
		return "", invalidExtension(path, Extension(path))
	}

	// Size comes from metadata so an oversize file is never loaded.
	if info.Size() > MaxFileSize {
		return "", fileTooLarge(path, info.Size())
	}

	return readContent(fsys, path)
}

func (r *Reader) fileSystem() FileSystem {
	if r.FS == nil {
		return &RealFileSystem{}
	}
	return r.FS
}

func readContent(fsys FileSystem, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", readError(path, err)
	}
	defer func() { _ = f.Close() }()

	// One byte past the cap detects a file that grew after Stat.
	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return "", readError(path, err)
	}
	if int64(len(data)) > MaxFileSize {
		return "", fileTooLarge(path, int64(len(data)))
	}

	if !utf8.Valid(data) {
		return "", readError(path, ErrInvalidUTF8)
	}

	return string(data), nil
}

// classifyStatError maps a Stat failure onto the error taxonomy.
func classifyStatError(path string, err error) *Error {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return fileNotFound(path)
	default:
		return readError(path, err)
	}
}

// Extension returns the text after the last "." in the final path segment,
// or "" if there is none.
func Extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// IsMarkdownFile reports whether path has a .md or .markdown extension (case-insensitive).
func IsMarkdownFile(path string) bool {
	ext := Extension(path)
	return strings.EqualFold(ext, "md") || strings.EqualFold(ext, "markdown")
}
