package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/PolarWolf314/campus/internal/workflows"
	"github.com/spf13/cobra"
)

// AccountsCmd groups the professor-only account commands.
var AccountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage student accounts (professors only)",
}

var resetTarget string

func init() {
	addAuthFlags(AccountsCmd)
	accountsResetPasswordCmd.Flags().StringVar(&resetTarget, "target", "", "student account whose password is reset")
	AccountsCmd.AddCommand(accountsResetPasswordCmd)
}

// resetAccountsState resets the accounts commands' global state for testing.
func resetAccountsState() {
	resetTarget = ""
}

var accountsResetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password on a student account",
	Long: `Sets a new password on a student account. Professor accounts cannot be
reset this way; their owners use 'campus me passwd'.

Examples:
  campus accounts reset-password -u smith --target alice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting accounts reset-password command")
		p := newPrompter(cmd)

		actor, err := authenticate(p)
		if err != nil {
			return handleError(cmd, err)
		}

		target := resetTarget
		if target == "" {
			if target, err = p.Line("Student username: "); err != nil {
				return err
			}
		}
		newPassword, err := p.Password("New password: ")
		if err != nil {
			return err
		}

		err = workflows.ResetStudentPassword(context.Background(), workflows.ResetStudentPasswordOptions{
			Actor:       actor,
			Username:    target,
			NewPassword: newPassword,
		})
		if err != nil {
			return handleError(cmd, err)
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.Lines(ui.Done("Password reset for "+ui.Highlight.Sprint(target))))
		return nil
	},
}
