// Package workflows provides the campus operations behind each command.
//
// Workflows coordinate the record stores, the auth service, report writers
// and the audit log. Each one handles a single user-facing operation,
// independent of CLI concerns like prompts, spinners and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and prompts for input
//   - Authenticates the acting account via Login
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Opening the stores from configs.Current
//   - Checking the acting account's role
//   - Validating new field values
//   - Performing the load, mutate, save cycle
//   - Recording audit trail entries
//
// # Roles
//
// Professor workflows (AddStudent, RemoveStudent, UpdateGrades, ListStudents,
// SearchStudents, GenerateReport, ResetStudentPassword) return
// ErrPermissionDenied for any other role. Student workflows (ViewProfile,
// ExportTranscript) need a student account with a StudentRef. The stores
// themselves never check roles.
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package:
//
//	result, err := workflows.UpdateGrades(ctx, opts)
//	if errors.Is(err, kerrors.ErrStudentNotFound) {
//	    // Show user-friendly message
//	}
package workflows
