package token

import "fmt"

// Error is an independent diagnostic value: a human-readable message,
// the verbatim offending slice, and the byte offset it begins at.
// Errors are not attached to tokens; the scanner emits either a Token
// or an Error per call, never both.
type Error struct {
	Message string
	Data    string
	Index   int
}

// NewError builds an Error without a known offset yet; callers that
// finalize a token's extent fill in Index themselves (see
// lexer.Scanner's error-finalization step).
func NewError(message, data string) *Error {
	return &Error{Message: message, Data: data}
}

// NewErrorAt builds an Error with an explicit byte offset.
func NewErrorAt(message, data string, index int) *Error {
	return &Error{Message: message, Data: data, Index: index}
}

// Error implements the error interface so *Error can be returned
// anywhere plain Go errors are expected (e.g. the participle adapter).
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %q @%d", e.Message, e.Data, e.Index)
}
