package cmd

import (
	"context"

	"github.com/PolarWolf314/campus/internal/workflows"
	"github.com/spf13/cobra"
)

var studentsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find students by ID or name",
	Long: `Finds the student with an exact ID, or every student whose name contains
the given text (case-sensitive).

Examples:
  campus students search -u smith --id 7
  campus students search -u smith --name Lee`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting students search command")
		p := newPrompter(cmd)

		actor, err := authenticate(p)
		if err != nil {
			return handleError(cmd, err)
		}

		opts := workflows.SearchStudentsOptions{Actor: actor, Name: studentName}
		if cmd.Flags().Changed("id") {
			id := studentID
			opts.ID = &id
		} else if opts.Name == "" {
			if opts.Name, err = p.Line("Name contains: "); err != nil {
				return err
			}
		}

		result, err := workflows.SearchStudents(context.Background(), opts)
		if err != nil {
			return handleError(cmd, err)
		}

		printStudents(cmd.OutOrStdout(), result.Matches)
		return nil
	},
}
