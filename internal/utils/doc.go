// Package utils provides terminal helpers for the campus CLI.
//
// # Terminal Utilities
//
// Functions for terminal detection and hidden input:
//   - IsTerminal: checks if a file is a terminal
//   - ReadPassword: prompts for a password without echo
package utils
