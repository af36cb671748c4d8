// Incident command records an occurrence against an episodic artifact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strata/pkg/engine"
)

var incidentCmd = &cobra.Command{
	Use:   "incident <path>",
	Short: "Record an incident against an episodic artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, budgets, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		tracker := engine.NewTracker(store, budgets)
		state, err := tracker.RecordIncident(args[0])
		if err != nil {
			return fmt.Errorf("incident %s: %w", args[0], err)
		}

		if flagJSON {
			return printJSON(state)
		}
		fmt.Printf("%s: %d incidents\n", args[0], state.PatternCount)
		if state.PatternCount >= budgets.GetConsolidationThreshold() && !state.Consolidated {
			fmt.Println("consolidation available: run strata consolidate", args[0])
		}
		return nil
	},
}
