package cmd

import (
	"github.com/PolarWolf314/campus/internal/configs"
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage campus configuration",
	Long: `Provides commands for creating and inspecting the configuration file.

The file lives at $CAMPUS_CONFIG, or config.toml in the campus directory
under your user config dir. $CAMPUS_KEY and $CAMPUS_DATA_DIR override the
values it contains.

Examples:
  # Write a config file with the default settings
  campus config init

  # Keep data files in a dedicated directory
  campus config init --data-dir ~/campus-data --atomic-writes

  # Show the effective settings
  campus config show`,
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigState resets all config command global variables to their default values for testing.
func resetConfigState() {
	resetConfigInitState()
	resetConfigShowState()
}

// activeConfigPath returns --config or the default location.
func activeConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return configs.ConfigPath()
}
