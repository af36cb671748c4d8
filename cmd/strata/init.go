// Init command for the strata CLI.
// Implements: prd009-cli R2; prd010-configuration R1, R2.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize strata storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		// Attaching creates the data directory and applies the schema.
		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		fmt.Println("Strata initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}
