// Consolidate command collapses a repeated episode into a pattern.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strata/pkg/engine"
)

var consolidateCmd = &cobra.Command{
	Use:   "consolidate <path>",
	Short: "Consolidate a repeated episodic artifact",
	Long: `Consolidate marks an episodic artifact as consolidated once its
pattern count has reached the configured threshold. Consolidated
episodes stay in tier 2 but leave the manifest rendering.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, budgets, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		tracker := engine.NewTracker(store, budgets)
		if err := tracker.Consolidate(args[0]); err != nil {
			return fmt.Errorf("consolidate %s: %w", args[0], err)
		}
		fmt.Println("consolidated", args[0])
		return nil
	},
}
