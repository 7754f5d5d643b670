package markdown

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"invalid path", invalidPath(), "Invalid path provided"},
		{"not found", fileNotFound("missing.md"), "File not found: 'missing.md'"},
		{"not a file", notAFile("docs/"), "Path is not a file: 'docs/'"},
		{"invalid extension", invalidExtension("report.txt", "txt"), "File 'report.txt' has invalid extension 'txt', expected '.md' or '.markdown'"},
		{"empty extension", invalidExtension("README", ""), "File 'README' has invalid extension '', expected '.md' or '.markdown'"},
		{"too large", fileTooLarge("big.md", 20*1024*1024), "File 'big.md' is too large (20971520 bytes), maximum allowed is 10MB"},
		{"read error", readError("file.md", errors.New("permission denied")), "Error reading file 'file.md': permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := os.ErrPermission
	err := readError("file.md", cause)

	assert.Same(t, cause, errors.Unwrap(err))
	assert.ErrorIs(t, err, os.ErrPermission)

	// Only read errors carry a cause.
	withCause := &Error{Kind: KindFileNotFound, Path: "x.md", Err: cause}
	assert.Nil(t, withCause.Unwrap())
	assert.Nil(t, errors.Unwrap(notAFile("dir")))
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		err    error
		target error
	}{
		{invalidPath(), ErrInvalidPath},
		{fileNotFound("a.md"), ErrFileNotFound},
		{notAFile("a"), ErrNotAFile},
		{invalidExtension("a.txt", "txt"), ErrInvalidExtension},
		{fileTooLarge("a.md", 1), ErrFileTooLarge},
		{readError("a.md", errors.New("boom")), ErrReadError},
	}

	sentinels := []error{ErrInvalidPath, ErrFileNotFound, ErrNotAFile, ErrInvalidExtension, ErrFileTooLarge, ErrReadError}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.target)
			for _, s := range sentinels {
				if s != tt.target {
					assert.NotErrorIs(t, tt.err, s)
				}
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("cli: %w", notAFile("docs"))
	assert.Equal(t, KindNotAFile, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "file not found", KindFileNotFound.String())
	assert.Equal(t, "invalid extension", KindInvalidExtension.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestErrorAs(t *testing.T) {
	_, err := (&Reader{FS: &mockFileSystem{StatFunc: statFile(5)}}).Read("notes.txt")

	var mdErr *Error
	require.ErrorAs(t, err, &mdErr)
	assert.Equal(t, "notes.txt", mdErr.Path)
	assert.Equal(t, "txt", mdErr.Ext)
}
