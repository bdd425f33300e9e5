package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/campus/internal/configs"
	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configInitDataDir      string
	configInitKey          string
	configInitAtomicWrites bool
	configInitForce        bool
)

func init() {
	configInitCmd.Flags().StringVar(&configInitDataDir, "data-dir", "", "directory holding the data files")
	configInitCmd.Flags().StringVar(&configInitKey, "key", "", "cipher key for the data files")
	configInitCmd.Flags().BoolVar(&configInitAtomicWrites, "atomic-writes", false, "replace data files through a temporary file and rename")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitDataDir = ""
	configInitKey = ""
	configInitAtomicWrites = false
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file",
	Long: `Writes a config file with the default settings, adjusted by any flags.

An existing file is left alone unless --force is given.

Changing the key does not re-encode existing data files; they can only be
read with the key they were written with.

Examples:
  campus config init
  campus config init --data-dir /srv/campus --key "$(cat key.txt)"
  campus config init --force --atomic-writes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")
		out := cmd.OutOrStdout()
		path := activeConfigPath()

		if _, err := os.Stat(path); err == nil && !configInitForce {
			fmt.Fprint(out, ui.Lines(
				ui.Warning.Sprint("⚠")+" Config file already exists at "+ui.Path.Sprint(path),
				ui.Hint("Run "+ui.Code.Sprint("campus config init --force")+" to overwrite it"),
			))
			return nil
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Logger.ErrorfAndReturn("Failed to check %s: %v", path, err)
		}

		cfg := configs.DefaultConfig()
		if configInitDataDir != "" {
			cfg.Storage.DataDir = configInitDataDir
		}
		if configInitKey != "" {
			cfg.Security.Key = configInitKey
		}
		cfg.Storage.AtomicWrites = configInitAtomicWrites

		if err := cfg.Validate(); err != nil {
			fmt.Fprint(out, ui.Lines(ui.Failed(err.Error())))
			return nil
		}

		Logger.Debugf("Writing config to %s", path)
		if err := configs.SaveConfig(cfg, path); err != nil {
			return Logger.ErrorfAndReturn("Failed to save config: %v", err)
		}

		fmt.Fprint(out, ui.Lines(
			ui.Done("Config written to "+ui.Path.Sprint(path)),
			"",
			"Your settings:",
			"  Data dir:      "+ui.Path.Sprint(cfg.Storage.DataDir),
			"  Atomic writes: "+fmt.Sprint(cfg.Storage.AtomicWrites),
			"  Key:           "+ui.Muted.Sprint(cfg.MaskedKey()),
		))
		return nil
	},
}
