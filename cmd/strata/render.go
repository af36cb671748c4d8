// Render command produces the tier-0 manifest document.
// Implements: prd007-manifest (CLI surface).
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strata/pkg/types"
)

var renderSave bool

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the tier-0 manifest",
	Long: `Render prints the manifest: one pipe-delimited line per domain, the
cross-cutting constraints, and the search index pointer. Shipped or
archived tasks and consolidated episodes are excluded. Exceeding the
token ceiling fails with the actual and limit counts; nothing is
truncated — shrink an entry and retry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, budgets, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		manifest := newManifestIndex(store, budgets)
		text, err := manifest.Render()
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		if renderSave {
			manifestPath := cfg.GetString(cfgKeyManifestPath)
			if _, err := store.UpdateArtifact(manifestPath, text); err != nil {
				if !errors.Is(err, types.ErrNotFound) {
					return fmt.Errorf("render: %w", err)
				}
				if _, err := store.RegisterArtifact(manifestPath, text,
					types.TierManifest, types.ArchetypeLivingDocument); err != nil {
					return fmt.Errorf("render: %w", err)
				}
			}
		}
		fmt.Print(text)
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderSave, "save", false, "also write the manifest artifact")
}
