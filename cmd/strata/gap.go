// Gap commands manage known-missing knowledge in cumulative records.
// A gap is a first-class record, distinct from simple absence.
package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strata/pkg/engine"
	"github.com/mesh-intelligence/strata/pkg/types"
)

// gapDir is the path prefix for gap records created by "gap add".
const gapDir = "gaps"

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Track known-missing knowledge",
}

var gapAddCmd = &cobra.Command{
	Use:   "add <topic>",
	Short: "Record a known gap",
	Long: `Gap add registers an empty cumulative record for a topic that is known
to be missing. Once content exists, update the artifact and run
"gap fill" to clear the flag.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		gapPath := path.Join(gapDir, args[0]+".md")
		artifact, err := store.RegisterArtifact(gapPath, "",
			types.TierReference, types.ArchetypeCumulative)
		if err != nil {
			return fmt.Errorf("gap add %s: %w", args[0], err)
		}
		fmt.Println("gap recorded:", artifact.Path)
		return nil
	},
}

var gapListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open gaps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, budgets, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		tracker := engine.NewTracker(store, budgets)
		gaps, err := tracker.ListGaps()
		if err != nil {
			return fmt.Errorf("gap list: %w", err)
		}

		if flagJSON {
			return printJSON(gaps)
		}
		for _, g := range gaps {
			fmt.Println(g)
		}
		return nil
	},
}

var gapFillCmd = &cobra.Command{
	Use:   "fill <path>",
	Short: "Clear the gap flag after content is registered",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, budgets, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		tracker := engine.NewTracker(store, budgets)
		if err := tracker.FillGap(args[0]); err != nil {
			return fmt.Errorf("gap fill %s: %w", args[0], err)
		}
		fmt.Println("gap filled:", args[0])
		return nil
	},
}

var gapMarkCmd = &cobra.Command{
	Use:   "mark <path>",
	Short: "Flag an existing cumulative record as a gap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, budgets, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		tracker := engine.NewTracker(store, budgets)
		if err := tracker.MarkGap(args[0]); err != nil {
			return fmt.Errorf("gap mark %s: %w", args[0], err)
		}
		fmt.Println("gap marked:", args[0])
		return nil
	},
}

func init() {
	gapCmd.AddCommand(gapAddCmd)
	gapCmd.AddCommand(gapListCmd)
	gapCmd.AddCommand(gapFillCmd)
	gapCmd.AddCommand(gapMarkCmd)
}
