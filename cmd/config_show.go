package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/campus/internal/configs"
	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

// shownConfig is the JSON shape of config show. The key is always masked.
type shownConfig struct {
	ConfigFile     string `json:"config_file"`
	DataDir        string `json:"data_dir"`
	StudentsFile   string `json:"students_file"`
	AccountsFile   string `json:"accounts_file"`
	AtomicWrites   bool   `json:"atomic_writes"`
	Key            string `json:"key"`
	ReportFile     string `json:"report_file"`
	TranscriptFile string `json:"transcript_file"`
	AuditLog       string `json:"audit_log"`
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Displays the settings in effect after defaults, the config file and
environment overrides are combined. File names are shown resolved against
the data directory. The key is masked.

Examples:
  campus config show
  campus config show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		cfg := configs.Current
		shown := shownConfig{
			ConfigFile:     activeConfigPath(),
			DataDir:        cfg.Storage.DataDir,
			StudentsFile:   cfg.StudentsPath(),
			AccountsFile:   cfg.AccountsPath(),
			AtomicWrites:   cfg.Storage.AtomicWrites,
			Key:            cfg.MaskedKey(),
			ReportFile:     cfg.ReportPath(),
			TranscriptFile: cfg.TranscriptPath(),
			AuditLog:       cfg.AuditPath(),
		}

		out := cmd.OutOrStdout()
		if configShowJSON {
			data, err := json.MarshalIndent(shown, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal config to JSON: %v", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintln(out, ui.Info.Sprint("Configuration")+" ("+ui.Path.Sprint(shown.ConfigFile)+"):")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-16s %s\n", "Data dir:", ui.Path.Sprint(shown.DataDir))
		fmt.Fprintf(out, "  %-16s %s\n", "Students file:", ui.Path.Sprint(shown.StudentsFile))
		fmt.Fprintf(out, "  %-16s %s\n", "Accounts file:", ui.Path.Sprint(shown.AccountsFile))
		fmt.Fprintf(out, "  %-16s %t\n", "Atomic writes:", shown.AtomicWrites)
		fmt.Fprintf(out, "  %-16s %s\n", "Key:", ui.Muted.Sprint(shown.Key))
		fmt.Fprintf(out, "  %-16s %s\n", "Report file:", ui.Path.Sprint(shown.ReportFile))
		fmt.Fprintf(out, "  %-16s %s\n", "Transcript file:", ui.Path.Sprint(shown.TranscriptFile))
		fmt.Fprintf(out, "  %-16s %s\n", "Audit log:", ui.Path.Sprint(shown.AuditLog))
		return nil
	},
}
