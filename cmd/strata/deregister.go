// Deregister command removes an artifact and its lifecycle state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deregisterCmd = &cobra.Command{
	Use:   "deregister <path>",
	Short: "Remove an artifact",
	Long: `Deregister removes an artifact and its lifecycle state. An artifact
still referenced by a manifest entry or a brief cannot be removed; delete
the referencing records first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := store.DeregisterArtifact(args[0]); err != nil {
			return fmt.Errorf("deregister %s: %w", args[0], err)
		}
		fmt.Println("deregistered", args[0])
		return nil
	},
}
