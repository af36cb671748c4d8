// Register command creates a new artifact with its tier and archetype.
// Implements: prd001-store-core R3 (registration).
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	registerTier      string
	registerArchetype string
	registerContent   string
	registerFile      string
)

var registerCmd = &cobra.Command{
	Use:   "register <path>",
	Short: "Register a new artifact",
	Long: `Register stores a new artifact under the given path with a tier and a
lifecycle archetype. The archetype is immutable after registration;
changing it requires deregister and re-register.

Example:
  strata register briefs/auth.md --tier brief --archetype living_document --file auth.md
  strata register notes/incident-42.md --tier reference --archetype episodic --content "..."`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContent(registerFile, registerContent)
		if err != nil {
			return err
		}

		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		artifact, err := store.RegisterArtifact(args[0], content, registerTier, registerArchetype)
		if err != nil {
			return fmt.Errorf("register %s: %w", args[0], err)
		}

		if flagJSON {
			return printJSON(artifact)
		}
		fmt.Printf("registered %s (%s/%s) hash %s\n",
			artifact.Path, artifact.Tier, artifact.Archetype, artifact.HashPrefix())
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerTier, "tier", "reference", "tier: manifest, brief, or reference")
	registerCmd.Flags().StringVar(&registerArchetype, "archetype", "", "lifecycle archetype (required)")
	registerCmd.Flags().StringVar(&registerContent, "content", "", "artifact content")
	registerCmd.Flags().StringVar(&registerFile, "file", "", "read artifact content from file")
	_ = registerCmd.MarkFlagRequired("archetype")
}
