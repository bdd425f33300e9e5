package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/PolarWolf314/campus/internal/workflows"
	"github.com/spf13/cobra"
)

var studentsRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a student record",
	Long: `Removes every student record with the given ID. Removing an ID that
does not exist leaves the file unchanged and is not an error.

Examples:
  campus students remove -u smith --id 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting students remove command")
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

		result, err := workflows.RemoveStudent(context.Background(), workflows.RemoveStudentOptions{
			Actor: actor,
			ID:    id,
		})
		if err != nil {
			return handleError(cmd, err)
		}

		if result.Removed == 0 {
			fmt.Fprint(cmd.OutOrStdout(), ui.Lines(ui.Hint(fmt.Sprintf("No student with ID %d; nothing removed", id))))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.Lines(ui.Done(fmt.Sprintf("Removed student %d", id))))
		return nil
	},
}
