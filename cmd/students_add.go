package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/campus/internal/records"
	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/PolarWolf314/campus/internal/workflows"
	"github.com/spf13/cobra"
)

var studentsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a student record",
	Long: `Appends a student record. The ID must not already be in use.

Examples:
  campus students add -u smith --id 7 --name "Ann Lee" --grades 90,85.5
  campus students add -u smith        # prompts for every field`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting students add command")
		p := newPrompter(cmd)

		actor, err := authenticate(p)
		if err != nil {
			return handleError(cmd, err)
		}

		student := records.Student{ID: studentID, Name: studentName}
		if !cmd.Flags().Changed("id") {
			if student.ID, err = p.Int("Student ID: "); err != nil {
				return handleInputError(cmd, err)
			}
		}
		if student.Name == "" {
			if student.Name, err = p.Line("Name: "); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("grades") {
			student.Grades, err = parseGrades(studentGrades)
		} else {
			student.Grades, err = p.Grades("Grades (comma separated): ")
		}
		if err != nil {
			return handleInputError(cmd, err)
		}

		result, err := workflows.AddStudent(context.Background(), workflows.AddStudentOptions{
			Actor:   actor,
			Student: student,
		})
		if err != nil {
			return handleError(cmd, err)
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.Lines(
			ui.Done(fmt.Sprintf("Added %s (ID %d)", ui.Highlight.Sprint(result.Student.Name), result.Student.ID)),
			ui.Muted.Sprint(fmt.Sprintf("%d students on record", result.Total)),
		))
		return nil
	},
}
