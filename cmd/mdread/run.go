package main

import (
	"errors"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vertti/mdread/pkg/output"
)

// usageError reports malformed command-line arguments.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return "invalid arguments: " + e.msg }

// configError reports an unreadable or invalid config file.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	printer := &output.Printer{Out: stdout, Err: stderr, Binary: binaryName}

	var uErr *usageError
	var cErr *configError
	switch {
	case errors.As(err, &uErr):
		printer.PrintUsageError(uErr.msg)
	case errors.As(err, &cErr):
		printer.PrintErrorWithHint(cErr, "Check the config file syntax and allowed values.")
	default:
		printer.PrintError(err)
	}
	return ExitError
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
