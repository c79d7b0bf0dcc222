// Package hiper wires the CLI together: cobra commands on top, the
// pkg/commands implementations underneath. All environment reads happen
// here at the edge; everything below receives resolved values.
package hiper

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mroximut/hiper/internal/version"
	"github.com/mroximut/hiper/pkg/config"
	"github.com/mroximut/hiper/pkg/logging"
	"github.com/mroximut/hiper/pkg/paths"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "hiper",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newFokusCmd())
	rootCmd.AddCommand(newPostfokusCmd())
	rootCmd.AddCommand(newPrefokusCmd())
	rootCmd.AddCommand(newFinishCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newReadCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newBackupCmd())
	rootCmd.AddCommand(newInstallCmd())

	return rootCmd
}

// loadConfig reads the config file from the default data directory.
func loadConfig() (*config.Config, error) {
	return config.Load(paths.DefaultDataDir())
}

// resolveDataDir loads the config and resolves where the CSV data lives.
func resolveDataDir() (*config.Config, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}
	return cfg, cfg.DataDir(), nil
}
