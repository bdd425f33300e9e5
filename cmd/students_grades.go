package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/campus/internal/report"
	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/PolarWolf314/campus/internal/workflows"
	"github.com/spf13/cobra"
)

var studentsGradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "Replace a student's grades",
	Long: `Replaces all grades of the student with the given ID.

Examples:
  campus students grades -u smith --id 7 --grades 70,80,95
  campus students grades -u smith --id 7 --grades ""   # clear grades`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting students grades command")
		p := newPrompter(cmd)

		actor, err := authenticate(p)
		if err != nil {
			return handleError(cmd, err)
		}

		id := studentID
		if !cmd.Flags().Changed("id") {
			if id, err = p.Int("Student ID: "); err != nil {
				return handleInputError(cmd, err)
			}
		}
		var grades []float64
		if cmd.Flags().Changed("grades") {
			grades, err = parseGrades(studentGrades)
		} else {
			grades, err = p.Grades("New grades (comma separated): ")
		}
		if err != nil {
			return handleInputError(cmd, err)
		}

		result, err := workflows.UpdateGrades(context.Background(), workflows.UpdateGradesOptions{
			Actor:  actor,
			ID:     id,
			Grades: grades,
		})
		if err != nil {
			return handleError(cmd, err)
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.Lines(ui.Done(fmt.Sprintf(
			"Updated grades for %s: %s",
			ui.Highlight.Sprint(result.Student.Name),
			report.FormatGrades(result.Student.Grades),
		))))
		return nil
	},
}
