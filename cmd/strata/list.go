// List command prints registered artifacts, optionally filtered.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strata/pkg/types"
)

var (
	listTier      string
	listArchetype string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered artifacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		artifacts, err := store.ListArtifacts(types.ArtifactFilter{
			Tier:      listTier,
			Archetype: listArchetype,
		})
		if err != nil {
			return fmt.Errorf("list: %w", err)
		}

		if flagJSON {
			return printJSON(artifacts)
		}
		for _, a := range artifacts {
			fmt.Printf("%-10s %-16s %s  %s\n", a.Tier, a.Archetype, a.HashPrefix(), a.Path)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listTier, "tier", "", "filter by tier")
	listCmd.Flags().StringVar(&listArchetype, "archetype", "", "filter by archetype")
}
