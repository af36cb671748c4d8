// Transition command applies a lifecycle transition to an artifact.
// Implements: prd003-lifecycle (CLI surface).
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strata/pkg/engine"
)

var transitionSupersedes string

var transitionCmd = &cobra.Command{
	Use:   "transition <path> <status>",
	Short: "Apply a lifecycle transition",
	Long: `Transition moves a task-scoped or decision-record artifact to the
target status. Task statuses: draft, active, in_review, shipped,
archived. Decision statuses: accepted, deprecated, superseded
(--supersedes required). Invalid edges are rejected, never corrected.

Example:
  strata transition tasks/migrate-auth.md active
  strata transition decisions/adr-007.md superseded --supersedes decisions/adr-012.md`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, budgets, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		tracker := engine.NewTracker(store, budgets)
		result, err := tracker.Transition(args[0], args[1], transitionSupersedes)
		if err != nil {
			return fmt.Errorf("transition %s: %w", args[0], err)
		}

		if flagJSON {
			return printJSON(result)
		}
		fmt.Printf("%s: %s -> %s\n", result.Path, result.From, result.To)
		if result.PromotionRequired {
			fmt.Println("promotion required: migrate durable knowledge to decision or living-document artifacts")
		}
		return nil
	},
}

func init() {
	transitionCmd.Flags().StringVar(&transitionSupersedes, "supersedes", "", "path of the superseding decision")
}
