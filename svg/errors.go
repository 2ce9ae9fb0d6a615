package svg

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2"
)

// ErrInvalid is matched by every error returned from the parser.
var ErrInvalid = errors.New("svg: invalid document")

// SyntaxError is a malformed construct at a known position of the document.
type SyntaxError struct {
	Err *parse.Error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("svg: %s (line %d, column %d)", e.Err.Message, e.Err.Line, e.Err.Column)
}

// Unwrap returns ErrInvalid and the positioned parse error.
func (e *SyntaxError) Unwrap() []error {
	return []error{ErrInvalid, e.Err}
}

// Line returns the 1-based line of the error.
func (e *SyntaxError) Line() int { return e.Err.Line }

// Column returns the 1-based column of the error.
func (e *SyntaxError) Column() int { return e.Err.Column }

func syntaxError(src []byte, offset int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Err: parse.NewError(bytes.NewReader(src), offset, format, args...)}
}

// valueError is returned by the attribute value parsers. Offset is relative
// to the start of the value and is turned into a SyntaxError by the caller.
type valueError struct {
	offset int
	msg    string
}

func (e *valueError) Error() string { return e.msg }

func errorAt(offset int, format string, args ...any) *valueError {
	return &valueError{offset: offset, msg: fmt.Sprintf(format, args...)}
}
