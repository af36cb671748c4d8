// Drift-check command reports staleness for a single artifact.
// Implements: prd004-drift (CLI surface).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strata/pkg/engine"
)

var driftCheckCmd = &cobra.Command{
	Use:   "drift-check <path>",
	Short: "Check an artifact for drift",
	Long: `Drift-check prints "stale" or "fresh" for the artifact at path and
exits 1 when stale. Checking never mutates state; run acknowledge after
re-deriving dependent content.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, budgets, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		detector := engine.NewDriftDetector(store, budgets)
		result, err := detector.Check(args[0])
		if err != nil {
			return fmt.Errorf("drift-check %s: %w", args[0], err)
		}

		if flagJSON {
			if err := printJSON(result); err != nil {
				return err
			}
		} else if result.IsStale {
			fmt.Printf("stale %s (stored %.8s, current %.8s)\n",
				result.Path, result.StoredHash, result.CurrentHash)
		} else {
			fmt.Println("fresh", result.Path)
		}

		if result.IsStale {
			store.Detach()
			os.Exit(exitUserError)
		}
		return nil
	},
}
