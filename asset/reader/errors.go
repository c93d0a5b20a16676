package reader

import (
	"fmt"
	"strings"
)

// A ParseError reports a fatal problem found while parsing a source file.
type ParseError struct {
	// The file and line that triggered the error. Line is 0 when the
	// error is not tied to a specific line.
	File string
	Line int

	Err error
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("error: %s", e.Err.Error())
	}
	if e.Line == 0 {
		return fmt.Sprintf("[%s] error: %s", e.File, e.Err.Error())
	}
	return fmt.Sprintf("[%s: %d] error: %s", e.File, e.Line, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Generate an error tied to a file location. Use %w in msgFormat to keep
// the cause available to errors.Is/As.
func emitError(file string, line int, msgFormat string, args ...interface{}) error {
	return &ParseError{
		File: file,
		Line: line,
		Err:  fmt.Errorf(msgFormat, args...),
	}
}

// Format a syntax error for a directive with the wrong number of arguments.
func argCountError(keyword string, expected string, got int) error {
	return fmt.Errorf(`unsupported syntax for "%s"; expected %s; got %d`, keyword, expected, got)
}

// Truncate a line for log output.
func abbreviate(line string) string {
	const maxLen = 80
	if len(line) <= maxLen {
		return line
	}
	return strings.TrimSpace(line[:maxLen]) + "..."
}
