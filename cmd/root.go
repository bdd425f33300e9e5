package cmd

import (
	"fmt"

	"github.com/PolarWolf314/campus/internal/configs"
	logger "github.com/PolarWolf314/campus/internal/logging"
	"github.com/PolarWolf314/campus/internal/ui"
	"github.com/PolarWolf314/campus/internal/workflows"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose    bool
	debug      bool
	configPath string
	Logger     logger.Logger

	RootCmd = &cobra.Command{
		Use:   "campus",
		Short: "Campus - student records and accounts kept in obfuscated text files.",
		Long: `Campus manages academic records and login accounts for a small department.

Both collections live in plain text files, one obfuscated record per line,
and are rewritten in full on every change.

Professors can add, remove and grade students, search the roster and export
a CSV report. Students can view their own record and export a transcript.

Run 'campus login' for the interactive menu, or use the subcommands below
for scripted access.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			workflows.Logger = Logger
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)

			path := activeConfigPath()
			Logger.Debugf("Loading configuration from %s", path)
			unknown, err := configs.Init(path)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to load configuration: %v", err)
			}
			for _, key := range unknown {
				Logger.WarnfAlways("Unknown configuration key %q in %s", key, path)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), figure.NewFigure("campus", "", true).String())
			fmt.Fprintln(cmd.OutOrStdout(), "Run "+ui.Code.Sprint("campus login")+" to start, or "+ui.Code.Sprint("campus --help")+" to see every command.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $CAMPUS_CONFIG or the user config dir)")

	RootCmd.AddCommand(signupCmd)
	RootCmd.AddCommand(loginCmd)
	RootCmd.AddCommand(StudentsCmd)
	RootCmd.AddCommand(AccountsCmd)
	RootCmd.AddCommand(MeCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(logCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	configPath = ""
	resetSignupState()
	resetAuthFlagState()
	resetStudentsState()
	resetAccountsState()
	resetMeState()
	resetConfigState()
	resetLogCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears Changed on every flag in the tree to prevent test pollution.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) { flag.Changed = false }
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}
