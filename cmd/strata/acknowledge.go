// Acknowledge command confirms re-derived content after a drift check.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strata/pkg/engine"
)

var acknowledgeCmd = &cobra.Command{
	Use:   "acknowledge <path>",
	Short: "Acknowledge an artifact's current content",
	Long: `Acknowledge records the current content hash of a living document (or
refreshes a cumulative record's validation timestamp) after dependent
tier-1 content has been re-derived. This is the confirm half of the
detect/confirm drift pattern.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, budgets, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		detector := engine.NewDriftDetector(store, budgets)
		if err := detector.Acknowledge(args[0]); err != nil {
			return fmt.Errorf("acknowledge %s: %w", args[0], err)
		}
		fmt.Println("acknowledged", args[0])
		return nil
	},
}
