// Root command for the strata CLI.
// Implements: prd009-cli (R1 root command, R6 global flags, R7 exit codes).
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/strata/internal/paths"
	"github.com/mesh-intelligence/strata/pkg/strata"
)

// Exit codes (prd009-cli R7).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// cfg holds the loaded config.yaml values. Set by PersistentPreRunE so all
// subcommands can use it.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Strata is a tiered knowledge retrieval and lifecycle engine",
	Long: `Strata manages a three-tier knowledge index: a token-bounded manifest,
per-domain briefs, and deep reference artifacts. It tracks artifact
lifecycles, detects drift against acknowledged content, and resolves
domain or keyword queries to the minimal artifact set.`,
	Version: strata.Version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err = loadConfig(configDir)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.strata-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deregisterCmd)
	rootCmd.AddCommand(briefCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(referenceCmd)
	rootCmd.AddCommand(driftCheckCmd)
	rootCmd.AddCommand(acknowledgeCmd)
	rootCmd.AddCommand(reindexCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(transitionCmd)
	rootCmd.AddCommand(incidentCmd)
	rootCmd.AddCommand(consolidateCmd)
	rootCmd.AddCommand(gapCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > STRATA_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > STRATA_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
