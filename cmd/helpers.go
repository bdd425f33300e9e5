package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/campus/internal/errors"
	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// FinalMSG values do not need trailing newlines. The cleanup function prints
// the final message to the command's output after stopping the spinner.
func startSpinner(cmd *cobra.Command, message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(cmd.OutOrStdout(), finalMsg)
		}
	}

	return s, cleanup
}

// formatError turns a workflow error into a user-facing message.
func formatError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrInvalidCredentials):
		return ui.Lines(
			ui.Failed("Invalid username or password"),
			ui.Hint("Create an account with "+ui.Code.Sprint("campus signup")),
		)

	case errors.Is(err, kerrors.ErrPermissionDenied):
		return ui.Failed("Permission denied: " + err.Error())

	case errors.Is(err, kerrors.ErrNoStudentReference):
		return ui.Lines(
			ui.Failed("This account is not linked to a student record"),
			ui.Hint("Ask a professor to recreate the account with a student ID"),
		)

	case errors.Is(err, kerrors.ErrStudentNotFound):
		return ui.Failed("Student not found: " + err.Error())

	case errors.Is(err, kerrors.ErrAccountNotFound):
		return ui.Failed("Account not found: " + err.Error())

	case errors.Is(err, kerrors.ErrDuplicateStudentID):
		return ui.Lines(
			ui.Failed("A student with that ID already exists"),
			ui.Hint("Use "+ui.Code.Sprint("campus students grades")+" to change an existing record"),
		)

	case errors.Is(err, kerrors.ErrUsernameTaken):
		return ui.Failed("That username is already taken")

	case errors.Is(err, kerrors.ErrInvalidInput):
		return ui.Failed(err.Error())

	case errors.Is(err, kerrors.ErrFormat):
		return ui.Lines(
			ui.Failed("A data file is corrupt: "+err.Error()),
			ui.Hint("Check that "+ui.Code.Sprint("security.key")+" matches the key the file was written with"),
		)

	case errors.Is(err, kerrors.ErrStoreIO):
		return ui.Failed("Could not access a data file: " + err.Error())

	default:
		return ui.Failed("Unexpected error: " + err.Error())
	}
}

// isUnexpectedError returns true if the error is unexpected and should cause a non-zero exit.
func isUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, kerrors.ErrInvalidCredentials),
		errors.Is(err, kerrors.ErrPermissionDenied),
		errors.Is(err, kerrors.ErrNoStudentReference),
		errors.Is(err, kerrors.ErrStudentNotFound),
		errors.Is(err, kerrors.ErrAccountNotFound),
		errors.Is(err, kerrors.ErrDuplicateStudentID),
		errors.Is(err, kerrors.ErrUsernameTaken),
		errors.Is(err, kerrors.ErrInvalidInput):
		return false
	default:
		return true
	}
}

// handleError prints err for the user and returns it only when it should
// fail the process.
func handleError(cmd *cobra.Command, err error) error {
	fmt.Fprint(cmd.OutOrStdout(), ui.EnsureNewline(formatError(err)))
	if isUnexpectedError(err) {
		return err
	}
	return nil
}
