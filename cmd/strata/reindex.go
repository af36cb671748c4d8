// Reindex command rebuilds the search index from the current brief set.
// Implements: prd006-search (CLI surface).
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strata/pkg/types"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the search index",
	Long: `Reindex rebuilds the full inverted keyword index from every brief's
keyword set and writes the rendered index to the configured search index
artifact. The index is not incremental: rebuilding is the correctness
mechanism, not an optimization. Fails when any brief is flagged over
budget.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		briefs, err := store.ListBriefs()
		if err != nil {
			return fmt.Errorf("reindex: %w", err)
		}
		for _, b := range briefs {
			if b.OverBudget {
				return fmt.Errorf("reindex: brief %q flagged over budget: %w",
					b.DomainName, types.ErrBudgetExceeded)
			}
		}

		// newEngine rebuilds the index as part of construction.
		eng, err := newEngine(store)
		if err != nil {
			return fmt.Errorf("reindex: %w", err)
		}
		idx := eng.Index()

		// Persist the rendered index at the configured artifact path.
		indexPath := cfg.GetString(cfgKeySearchIndexPath)
		text := idx.Render()
		if _, err := store.UpdateArtifact(indexPath, text); err != nil {
			if !errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("reindex: %w", err)
			}
			if _, err := store.RegisterArtifact(indexPath, text,
				types.TierManifest, types.ArchetypeLivingDocument); err != nil {
				return fmt.Errorf("reindex: %w", err)
			}
		}

		fmt.Printf("reindexed %d entries from %d briefs -> %s\n",
			idx.Len(), len(briefs), indexPath)
		return nil
	},
}
