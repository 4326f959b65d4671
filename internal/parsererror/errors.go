// Package parsererror defines the typed errors surfaced by imports and the
// persistence layer.
package parsererror

import "fmt"

// ParseError reports a value that could not be decoded.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v", e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError reports an input file that does not conform to the
// expected format. Nothing is mutated when it is returned.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s", e.FilePath, e.Msg, e.ExpectedFormat)
}

// FileTooLargeError reports an import rejected before parsing because the
// file exceeds the configured size limit.
type FileTooLargeError struct {
	FilePath string
	Size     int64
	Limit    int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file '%s' is too large: %d bytes (limit %d)", e.FilePath, e.Size, e.Limit)
}

// StoreError reports a failed persistence operation.
type StoreError struct {
	Key string
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed for key '%s': %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
