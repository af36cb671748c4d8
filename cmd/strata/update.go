// Update command replaces an artifact's content.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	updateContent string
	updateFile    string
)

var updateCmd = &cobra.Command{
	Use:   "update <path>",
	Short: "Update an artifact's content",
	Long: `Update replaces the content of a registered artifact, recomputing its
content hash and modification time. Lifecycle state is untouched: a
living document updated this way will report stale on the next
drift-check until acknowledged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContent(updateFile, updateContent)
		if err != nil {
			return err
		}

		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		artifact, err := store.UpdateArtifact(args[0], content)
		if err != nil {
			return fmt.Errorf("update %s: %w", args[0], err)
		}

		if flagJSON {
			return printJSON(artifact)
		}
		fmt.Printf("updated %s hash %s\n", artifact.Path, artifact.HashPrefix())
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateContent, "content", "", "new artifact content")
	updateCmd.Flags().StringVar(&updateFile, "file", "", "read new content from file")
}
