package replace

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates the input PDF does not exist.
	ErrFileNotFound = errors.New("PDF file not found")

	// ErrInvalidPDF indicates the file exists but is not a readable PDF.
	ErrInvalidPDF = errors.New("invalid PDF file")

	// ErrNoRequests indicates the resolver was invoked with an empty batch.
	ErrNoRequests = errors.New("no replacement requests provided")

	// ErrEmptyOldText indicates a request with nothing to search for.
	ErrEmptyOldText = errors.New("old text must not be empty")

	// ErrPageOutOfRange indicates a request targets a page the document
	// does not have.
	ErrPageOutOfRange = errors.New("page number out of range")

	// ErrNoMatch indicates no span or line on the target page matched the
	// requested text at the configured similarity threshold.
	ErrNoMatch = errors.New("no matching text found")

	// ErrInsertFailed indicates the old text was redacted but every
	// insertion strategy for the new text failed.
	ErrInsertFailed = errors.New("replacement text could not be inserted")
)

// Error wraps a resolver failure with the operation that produced it.
type Error struct {
	Op      string
	Err     error
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("replace %s: %v (%s)", e.Op, e.Err, e.Details)
	}
	return fmt.Sprintf("replace %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return errors.Is(e.Err, target) }

func newError(op string, err error, details string) *Error {
	return &Error{Op: op, Err: err, Details: details}
}
