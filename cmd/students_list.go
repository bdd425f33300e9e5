package cmd

import (
	"context"

	"github.com/PolarWolf314/campus/internal/workflows"
	"github.com/spf13/cobra"
)

var studentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every student record",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting students list command")
		p := newPrompter(cmd)

		actor, err := authenticate(p)
		if err != nil {
			return handleError(cmd, err)
		}

		result, err := workflows.ListStudents(context.Background(), workflows.ListStudentsOptions{Actor: actor})
		if err != nil {
			return handleError(cmd, err)
		}
		Logger.Debugf("Loaded %d students", len(result.Students))

		printStudents(cmd.OutOrStdout(), result.Students)
		return nil
	},
}
