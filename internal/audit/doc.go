// Package audit records who changed the record files and when.
//
// Every successful mutation (adding or removing a student, changing grades,
// signing up, changing or resetting a password, exporting a report) appends
// one entry to a JSON Lines file next to the record files:
//
//	<data_dir>/audit.jsonl
//
// Each entry contains the UTC timestamp, the acting username, the process
// session id and the operation name, plus operation-specific details. Entries
// never contain passwords or grades.
//
// # Usage
//
//	entry := audit.LogAs("alice", "student.add")
//	entry.StudentID = &id
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If the log cannot be written the operation
// still succeeds.
//
// # Reading Logs
//
// ReadEntries parses the log for display. Malformed lines are skipped so
// that a partially written final line does not hide earlier entries.
package audit
