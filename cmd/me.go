package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/campus/internal/records"
	"github.com/PolarWolf314/campus/internal/report"
	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/PolarWolf314/campus/internal/workflows"
	"github.com/spf13/cobra"
)

// MeCmd groups the commands that act on the logged-in account.
var MeCmd = &cobra.Command{
	Use:   "me",
	Short: "View your own record or change your password",
}

var transcriptOutput string

func init() {
	addAuthFlags(MeCmd)
	meTranscriptCmd.Flags().StringVarP(&transcriptOutput, "output", "o", "", "transcript file (default from config)")

	MeCmd.AddCommand(meProfileCmd)
	MeCmd.AddCommand(meGradesCmd)
	MeCmd.AddCommand(mePasswdCmd)
	MeCmd.AddCommand(meTranscriptCmd)
}

// resetMeState resets the me commands' global state for testing.
func resetMeState() {
	transcriptOutput = ""
}

var meProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your student record",
	RunE: func(cmd *cobra.Command, args []string) error {
		actor, err := authenticate(newPrompter(cmd))
		if err != nil {
			return handleError(cmd, err)
		}
		return showProfile(cmd, actor)
	},
}

var meGradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "Show your grades and average",
	RunE: func(cmd *cobra.Command, args []string) error {
		actor, err := authenticate(newPrompter(cmd))
		if err != nil {
			return handleError(cmd, err)
		}
		return showGrades(cmd, actor)
	},
}

var mePasswdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrompter(cmd)
		actor, err := authenticate(p)
		if err != nil {
			return handleError(cmd, err)
		}
		return changePassword(cmd, p, actor)
	},
}

var meTranscriptCmd = &cobra.Command{
	Use:   "transcript",
	Short: "Export your transcript to a text file",
	RunE: func(cmd *cobra.Command, args []string) error {
		actor, err := authenticate(newPrompter(cmd))
		if err != nil {
			return handleError(cmd, err)
		}
		return exportTranscript(cmd, actor, transcriptOutput)
	},
}

func showProfile(cmd *cobra.Command, actor records.Account) error {
	result, err := workflows.ViewProfile(context.Background(), workflows.ViewProfileOptions{Actor: actor})
	if err != nil {
		return handleError(cmd, err)
	}
	printStudent(cmd.OutOrStdout(), result.Student)
	return nil
}

func showGrades(cmd *cobra.Command, actor records.Account) error {
	result, err := workflows.ViewGrades(context.Background(), workflows.ViewProfileOptions{Actor: actor})
	if err != nil {
		return handleError(cmd, err)
	}
	if len(result.Grades) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No grades recorded yet.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Heading.Sprint("Grades:"), report.FormatGrades(result.Grades))
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Heading.Sprint("Average:"), records.FormatGrade(result.Average))
	return nil
}

func changePassword(cmd *cobra.Command, p *prompter, actor records.Account) error {
	newPassword, err := p.Password("New password: ")
	if err != nil {
		return err
	}
	err = workflows.ChangePassword(context.Background(), workflows.ChangePasswordOptions{
		Actor:       actor,
		NewPassword: newPassword,
	})
	if err != nil {
		return handleError(cmd, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.Lines(ui.Done("Password changed")))
	return nil
}

func exportTranscript(cmd *cobra.Command, actor records.Account, output string) error {
	spinner, cleanup := startSpinner(cmd, "Exporting transcript...")
	defer cleanup()

	result, err := workflows.ExportTranscript(context.Background(), workflows.ExportTranscriptOptions{
		Actor:      actor,
		OutputPath: output,
	})
	if err != nil {
		spinner.FinalMSG = formatError(err)
		if isUnexpectedError(err) {
			return err
		}
		return nil
	}

	spinner.FinalMSG = ui.Done("Transcript written to " + ui.Path.Sprint(result.OutputPath))
	return nil
}
