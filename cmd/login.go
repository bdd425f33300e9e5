package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/PolarWolf314/campus/internal/records"
	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/PolarWolf314/campus/internal/workflows"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and open the interactive menu",
	Long: `Logs in and opens the menu for the account's role.

Professors can manage student records, export the report and reset student
passwords. Students can view their record, change their password and
export a transcript.

Examples:
  campus login
  campus login --username smith`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&authUsername, "username", "u", "", "account to log in as")
}

type menuItem struct {
	label string
	run   func(cmd *cobra.Command, p *prompter, actor records.Account) error
}

var professorMenu = []menuItem{
	{"Add Student", menuAddStudent},
	{"Remove Student", menuRemoveStudent},
	{"Update Grades", menuUpdateGrades},
	{"View All Students", menuListStudents},
	{"Search Student", menuSearchStudents},
	{"Generate Report", func(cmd *cobra.Command, p *prompter, actor records.Account) error {
		return runReport(cmd, actor, "")
	}},
	{"Reset Student Password", menuResetPassword},
}

var studentMenu = []menuItem{
	{"View Profile", func(cmd *cobra.Command, p *prompter, actor records.Account) error {
		return showProfile(cmd, actor)
	}},
	{"View Grades", func(cmd *cobra.Command, p *prompter, actor records.Account) error {
		return showGrades(cmd, actor)
	}},
	{"Change Password", changePassword},
	{"Export Transcript", func(cmd *cobra.Command, p *prompter, actor records.Account) error {
		return exportTranscript(cmd, actor, "")
	}},
}

func runLogin(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting login command")
	p := newPrompter(cmd)
	out := cmd.OutOrStdout()

	actor, err := authenticate(p)
	if err != nil {
		return handleError(cmd, err)
	}
	fmt.Fprint(out, ui.Lines(ui.Done(fmt.Sprintf("Welcome, %s (%s)", ui.Highlight.Sprint(actor.Username), actor.Role))))

	title, items := "Student Menu", studentMenu
	if actor.Role.IsProfessor() {
		title, items = "Professor Menu", professorMenu
	}

	if err := runMenu(cmd, p, actor, title, items); err != nil {
		return err
	}
	fmt.Fprintln(out, "Goodbye!")
	return nil
}

// runMenu shows items until the user picks Exit or input ends.
func runMenu(cmd *cobra.Command, p *prompter, actor records.Account, title string, items []menuItem) error {
	out := cmd.OutOrStdout()
	exit := len(items) + 1

	for {
		fmt.Fprintf(out, "\n%s\n", ui.Heading.Sprint(title))
		for i, item := range items {
			fmt.Fprintf(out, "%d) %s\n", i+1, item.label)
		}
		fmt.Fprintf(out, "%d) Exit\n", exit)

		choice, err := p.Int("Choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil || choice < 1 || choice > exit {
			fmt.Fprint(out, ui.Lines(ui.Failed(fmt.Sprintf("Choose a number from 1 to %d", exit))))
			continue
		}
		if choice == exit {
			return nil
		}

		item := items[choice-1]
		Logger.Debugf("Menu choice %d: %s", choice, item.label)
		if err := item.run(cmd, p, actor); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			// Keep the session alive; the error has already been shown.
			Logger.Debugf("%s failed: %v", item.label, err)
		}
	}
}

// menuError prints err and keeps the menu running.
func menuError(cmd *cobra.Command, err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.EnsureNewline(formatError(err)))
	return nil
}

func menuAddStudent(cmd *cobra.Command, p *prompter, actor records.Account) error {
	var s records.Student
	var err error
	if s.ID, err = p.Int("ID: "); err != nil {
		return menuError(cmd, err)
	}
	if s.Name, err = p.Line("Name: "); err != nil {
		return menuError(cmd, err)
	}
	if s.Grades, err = p.Grades("Grades (comma or space separated): "); err != nil {
		return menuError(cmd, err)
	}

	if _, err := workflows.AddStudent(context.Background(), workflows.AddStudentOptions{Actor: actor, Student: s}); err != nil {
		return menuError(cmd, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.Lines(ui.Done("Student added")))
	return nil
}

func menuRemoveStudent(cmd *cobra.Command, p *prompter, actor records.Account) error {
	id, err := p.Int("ID to remove: ")
	if err != nil {
		return menuError(cmd, err)
	}
	result, err := workflows.RemoveStudent(context.Background(), workflows.RemoveStudentOptions{Actor: actor, ID: id})
	if err != nil {
		return menuError(cmd, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.Lines(ui.Done(fmt.Sprintf("Removed %d record(s)", result.Removed))))
	return nil
}

func menuUpdateGrades(cmd *cobra.Command, p *prompter, actor records.Account) error {
	id, err := p.Int("ID to update: ")
	if err != nil {
		return menuError(cmd, err)
	}
	grades, err := p.Grades("New grades (comma or space separated): ")
	if err != nil {
		return menuError(cmd, err)
	}
	opts := workflows.UpdateGradesOptions{Actor: actor, ID: id, Grades: grades}
	if _, err := workflows.UpdateGrades(context.Background(), opts); err != nil {
		return menuError(cmd, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.Lines(ui.Done("Grades updated")))
	return nil
}

func menuListStudents(cmd *cobra.Command, p *prompter, actor records.Account) error {
	result, err := workflows.ListStudents(context.Background(), workflows.ListStudentsOptions{Actor: actor})
	if err != nil {
		return menuError(cmd, err)
	}
	printStudents(cmd.OutOrStdout(), result.Students)
	return nil
}

func menuSearchStudents(cmd *cobra.Command, p *prompter, actor records.Account) error {
	by, err := p.Int("Search by (1) ID or (2) Name? ")
	if err != nil {
		return menuError(cmd, err)
	}

	opts := workflows.SearchStudentsOptions{Actor: actor}
	if by == 1 {
		id, err := p.Int("ID: ")
		if err != nil {
			return menuError(cmd, err)
		}
		opts.ID = &id
	} else if opts.Name, err = p.Line("Name substring: "); err != nil {
		return menuError(cmd, err)
	}

	result, err := workflows.SearchStudents(context.Background(), opts)
	if err != nil {
		return menuError(cmd, err)
	}
	printStudents(cmd.OutOrStdout(), result.Matches)
	return nil
}

func menuResetPassword(cmd *cobra.Command, p *prompter, actor records.Account) error {
	username, err := p.Line("Student username: ")
	if err != nil {
		return menuError(cmd, err)
	}
	password, err := p.Password("New password: ")
	if err != nil {
		return menuError(cmd, err)
	}
	err = workflows.ResetStudentPassword(context.Background(), workflows.ResetStudentPasswordOptions{
		Actor:       actor,
		Username:    username,
		NewPassword: password,
	})
	if err != nil {
		return menuError(cmd, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.Lines(ui.Done("Password reset")))
	return nil
}
