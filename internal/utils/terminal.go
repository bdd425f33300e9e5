package utils

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ReadPassword prompts on out and reads a line from f without echoing it.
// Returns an error if f is not a terminal.
func ReadPassword(f *os.File, out io.Writer, prompt string) (string, error) {
	fd := int(f.Fd())

	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("cannot read password: %s is not a terminal", f.Name())
	}

	fmt.Fprint(out, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(out) // Add newline after hidden input

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(password), nil
}

// IsTerminal returns true if f is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
