package errors

import (
	"errors"
	"fmt"
)

// Format errors indicate that persisted data could not be decoded.
var (
	// ErrFormat indicates a malformed record line or transport text.
	ErrFormat = errors.New("malformed record data")
)

// Storage errors indicate issues reading or writing a record file.
var (
	// ErrStoreIO indicates a record file could not be read or written.
	ErrStoreIO = errors.New("record file is not accessible")

	// ErrEmptyKey indicates the cipher key is empty.
	ErrEmptyKey = errors.New("cipher key must not be empty")
)

// Authentication errors indicate the caller may not perform an action.
var (
	// ErrInvalidCredentials indicates the username/password pair did not match.
	// It deliberately does not say which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPermissionDenied indicates the acting account's role does not allow the action.
	ErrPermissionDenied = errors.New("permission denied for this role")
)

// Record errors indicate issues with lookups or uniqueness.
var (
	// ErrStudentNotFound indicates no student has the requested id.
	ErrStudentNotFound = errors.New("student not found")

	// ErrAccountNotFound indicates no account has the requested username.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateStudentID indicates a student with the same id already exists.
	ErrDuplicateStudentID = errors.New("student id already exists")

	// ErrUsernameTaken indicates an account with the same username already exists.
	ErrUsernameTaken = errors.New("username already in use")

	// ErrNoStudentReference indicates a student account is not linked to a student record.
	ErrNoStudentReference = errors.New("account is not linked to a student record")

	// ErrInvalidInput indicates user-supplied field values failed validation.
	ErrInvalidInput = errors.New("invalid input")
)

// FormatError describes a single malformed line. Line is 1-based and zero
// when the error did not come from a file.
type FormatError struct {
	Line   int
	Reason string
	Err    error
}

// NewFormatError returns a FormatError with the given reason.
func NewFormatError(reason string, cause error) *FormatError {
	return &FormatError{Reason: reason, Err: cause}
}

func (e *FormatError) Error() string {
	msg := ErrFormat.Error()
	if e.Line > 0 {
		msg = fmt.Sprintf("%s on line %d", msg, e.Line)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// AtLine returns a copy of e with the line number set.
func (e *FormatError) AtLine(line int) *FormatError {
	c := *e
	c.Line = line
	return &c
}
