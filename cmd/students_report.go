package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/campus/internal/records"
	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/PolarWolf314/campus/internal/workflows"
	"github.com/spf13/cobra"
)

var studentsReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a CSV of every student's average grade",
	Long: `Writes an ID,Name,Average CSV for every student. Students without grades
average 0.

Examples:
  campus students report -u smith
  campus students report -u smith -o /tmp/grades.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting students report command")
		p := newPrompter(cmd)

		actor, err := authenticate(p)
		if err != nil {
			return handleError(cmd, err)
		}
		return runReport(cmd, actor, reportOutput)
	},
}

func runReport(cmd *cobra.Command, actor records.Account, output string) error {
	spinner, cleanup := startSpinner(cmd, "Generating report...")
	defer cleanup()

	result, err := workflows.GenerateReport(context.Background(), workflows.GenerateReportOptions{
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

	spinner.FinalMSG = ui.Done(fmt.Sprintf("Report with %d students written to %s", result.Rows, ui.Path.Sprint(result.OutputPath)))
	return nil
}
