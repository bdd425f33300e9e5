// Package ui provides semantic text formatting for campus console output.
//
// Formatters render with color when the terminal supports it. When NO_COLOR
// is set or the terminal can't show colors, text decorations (backticks,
// quotes) are used instead.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("campus login")          // Commands
//	ui.Path.Sprint("students.txt")          // File paths
//	ui.Highlight.Sprint("alice")            // User values
//	ui.Muted.Sprint("no grades")            // De-emphasized text
//
// # Status Lines
//
// Commands finish with a single status line:
//
//	ui.Done("Student added")                // ✓ Student added
//	ui.Failed("Student not found")          // ✗ Student not found
//	ui.Hint("Run " + ui.Code.Sprint("campus signup") + " first")
package ui
