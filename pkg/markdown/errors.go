package markdown

import (
	"errors"
	"fmt"
)

// Kind identifies which validation step rejected a path.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidPath
	KindFileNotFound
	KindNotAFile
	KindInvalidExtension
	KindFileTooLarge
	KindReadError
)

func (k Kind) String() string {
	switch k {
	case KindInvalidPath:
		return "invalid path"
	case KindFileNotFound:
		return "file not found"
	case KindNotAFile:
		return "not a file"
	case KindInvalidExtension:
		return "invalid extension"
	case KindFileTooLarge:
		return "file too large"
	case KindReadError:
		return "read error"
	default:
		return "unknown"
	}
}

// Error is the failure returned by Read. Only the fields relevant to Kind are set.
type Error struct {
	Kind Kind
	Path string // offending path, empty for KindInvalidPath
	Ext  string // extracted extension for KindInvalidExtension
	Size int64  // byte count for KindFileTooLarge
	Err  error  // underlying cause, KindReadError only
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrInvalidPath      = &Error{Kind: KindInvalidPath}
	ErrFileNotFound     = &Error{Kind: KindFileNotFound}
	ErrNotAFile         = &Error{Kind: KindNotAFile}
	ErrInvalidExtension = &Error{Kind: KindInvalidExtension}
	ErrFileTooLarge     = &Error{Kind: KindFileTooLarge}
	ErrReadError        = &Error{Kind: KindReadError}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidPath:
		return "Invalid path provided"
	case KindFileNotFound:
		return fmt.Sprintf("File not found: '%s'", e.Path)
	case KindNotAFile:
		return fmt.Sprintf("Path is not a file: '%s'", e.Path)
	case KindInvalidExtension:
		return fmt.Sprintf("File '%s' has invalid extension '%s', expected '.md' or '.markdown'", e.Path, e.Ext)
	case KindFileTooLarge:
		return fmt.Sprintf("File '%s' is too large (%d bytes), maximum allowed is %s", e.Path, e.Size, FormatSize(MaxFileSize))
	case KindReadError:
		return fmt.Sprintf("Error reading file '%s': %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("unknown markdown error for '%s'", e.Path)
	}
}

// Unwrap exposes the low-level cause of a read fault for diagnostics.
func (e *Error) Unwrap() error {
	if e.Kind != KindReadError {
		return nil
	}
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var mdErr *Error
	if errors.As(err, &mdErr) {
		return mdErr.Kind
	}
	return KindUnknown
}

func invalidPath() *Error {
	return &Error{Kind: KindInvalidPath}
}

func fileNotFound(path string) *Error {
	return &Error{Kind: KindFileNotFound, Path: path}
}

func notAFile(path string) *Error {
	return &Error{Kind: KindNotAFile, Path: path}
}

func invalidExtension(path, ext string) *Error {
	return &Error{Kind: KindInvalidExtension, Path: path, Ext: ext}
}

func fileTooLarge(path string, size int64) *Error {
	return &Error{Kind: KindFileTooLarge, Path: path, Size: size}
}

func readError(path string, err error) *Error {
	return &Error{Kind: KindReadError, Path: path, Err: err}
}
