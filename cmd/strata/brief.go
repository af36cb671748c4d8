// Brief commands manage tier-1 domain briefs.
// Implements: prd005-briefs (CLI surface).
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strata/pkg/engine"
	"github.com/mesh-intelligence/strata/pkg/types"
)

var briefScope string

var briefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Manage domain briefs",
}

var briefAddCmd = &cobra.Command{
	Use:   "add <domain> <artifact-path>",
	Short: "Create or refresh a domain brief from its artifact",
	Long: `Brief add parses the artifact at artifact-path (Keywords and Reference
Index sections), estimates its token count, and creates or replaces the
brief record for the domain. A manifest entry for the domain is written
in the same run. Out-of-budget briefs are flagged, never truncated.

Example:
  strata brief add auth briefs/auth.md --scope "Token auth flows"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, artifactPath := args[0], args[1]

		store, budgets, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		briefs := engine.NewBriefStore(store, budgets)
		brief, err := briefs.Add(domain, artifactPath)
		if err != nil {
			return fmt.Errorf("brief add %s: %w", domain, err)
		}

		artifact, err := store.GetArtifact(artifactPath)
		if err != nil {
			return fmt.Errorf("brief add %s: %w", domain, err)
		}
		entry := &types.ManifestEntry{
			DomainName:        domain,
			BriefPath:         artifactPath,
			OneLineScope:      briefScope,
			ContentHashPrefix: artifact.HashPrefix(),
		}
		if err := store.SaveManifestEntry(entry); err != nil {
			return fmt.Errorf("brief add %s: %w", domain, err)
		}

		if flagJSON {
			return printJSON(brief)
		}
		fmt.Printf("brief %s: %d tokens, %d keywords, %d references",
			domain, brief.TokenCount, len(brief.Keywords), len(brief.ReferencePaths))
		if brief.OverBudget {
			fmt.Print("  [over budget]")
		}
		fmt.Println()
		return nil
	},
}

var briefShowCmd = &cobra.Command{
	Use:   "show <domain>",
	Short: "Show a domain brief record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		brief, err := store.GetBrief(args[0])
		if err != nil {
			return fmt.Errorf("brief show %s: %w", args[0], err)
		}

		if flagJSON {
			return printJSON(brief)
		}
		fmt.Printf("domain:     %s\n", brief.DomainName)
		fmt.Printf("artifact:   %s\n", brief.ArtifactPath)
		fmt.Printf("tokens:     %d", brief.TokenCount)
		if brief.OverBudget {
			fmt.Print("  [over budget]")
		}
		fmt.Println()
		fmt.Printf("keywords:   %s\n", strings.Join(brief.Keywords, ", "))
		for _, r := range brief.ReferencePaths {
			fmt.Printf("reference:  %s\n", r)
		}
		return nil
	},
}

var briefRenderCmd = &cobra.Command{
	Use:   "render <domain>",
	Short: "Render a brief's content with budget enforcement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, budgets, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		briefs := engine.NewBriefStore(store, budgets)
		text, err := briefs.Render(args[0])
		if err != nil {
			return fmt.Errorf("brief render %s: %w", args[0], err)
		}
		fmt.Print(text)
		return nil
	},
}

func init() {
	briefAddCmd.Flags().StringVar(&briefScope, "scope", "", "one-line scope for the manifest entry")
	briefCmd.AddCommand(briefAddCmd)
	briefCmd.AddCommand(briefShowCmd)
	briefCmd.AddCommand(briefRenderCmd)
}
