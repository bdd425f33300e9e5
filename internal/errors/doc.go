// Package errors provides typed error values for the campus application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Format errors: a persisted line or transport text is malformed (ErrFormat, FormatError)
//   - Storage errors: a backing file cannot be read or written (ErrStoreIO, ErrEmptyKey)
//   - Authentication errors: credentials or role do not allow the action
//     (ErrInvalidCredentials, ErrPermissionDenied)
//   - Record errors: lookups and uniqueness checks (ErrStudentNotFound, ErrUsernameTaken, ...)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(key) == 0 {
//	    return nil, errors.ErrEmptyKey
//	}
//
// Handle errors in the CLI layer:
//
//	_, err := workflows.Login(ctx, opts)
//	if errors.Is(err, kerrors.ErrInvalidCredentials) {
//	    // Show user-friendly message
//	}
//
// A FormatError carries the offending line number when the store produced it:
//
//	var ferr *kerrors.FormatError
//	if errors.As(err, &ferr) {
//	    fmt.Println("corrupt line", ferr.Line)
//	}
package errors
