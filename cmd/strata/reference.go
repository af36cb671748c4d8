// Reference command is the explicit tier-2 load that resolve never
// performs on its own.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var referenceCmd = &cobra.Command{
	Use:   "reference <path>",
	Short: "Load a tier-2 reference artifact",
	Long: `Reference prints the content of the artifact at path. Resolve stops at
tier 1; stepping down to a deep reference is always this explicit call.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		eng, err := newEngine(store)
		if err != nil {
			return err
		}
		artifact, err := eng.LoadReference(args[0])
		if err != nil {
			return fmt.Errorf("reference %s: %w", args[0], err)
		}

		if flagJSON {
			return printJSON(artifact)
		}
		fmt.Print(artifact.Content)
		return nil
	},
}
