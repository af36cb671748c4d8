// Show command prints a single artifact with its lifecycle state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strata/pkg/types"
)

var showContent bool

var showCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Show an artifact and its lifecycle state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		artifact, err := store.GetArtifact(args[0])
		if err != nil {
			return fmt.Errorf("show %s: %w", args[0], err)
		}
		state, err := store.GetLifecycleState(args[0])
		if err != nil {
			return fmt.Errorf("show %s: %w", args[0], err)
		}

		if flagJSON {
			return printJSON(struct {
				Artifact *types.Artifact       `json:"artifact"`
				State    *types.LifecycleState `json:"lifecycle_state"`
			}{artifact, state})
		}

		fmt.Printf("path:      %s\n", artifact.Path)
		fmt.Printf("tier:      %s\n", artifact.Tier)
		fmt.Printf("archetype: %s\n", artifact.Archetype)
		fmt.Printf("hash:      %s\n", artifact.ContentHash)
		fmt.Printf("bytes:     %d\n", artifact.ByteSize)
		fmt.Printf("created:   %s\n", artifact.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("modified:  %s\n", artifact.ModifiedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("state:     %s\n", describeState(state))
		if showContent {
			fmt.Println("---")
			fmt.Println(artifact.Content)
		}
		return nil
	},
}

// describeState renders the active lifecycle variant in one line.
func describeState(state *types.LifecycleState) string {
	switch state.Archetype {
	case types.ArchetypeTaskScoped:
		return state.Task.Status
	case types.ArchetypeDecisionRecord:
		if state.Decision.Supersedes != "" {
			return fmt.Sprintf("%s (by %s)", state.Decision.Status, state.Decision.Supersedes)
		}
		return state.Decision.Status
	case types.ArchetypeLivingDocument:
		if state.Living.Drift {
			return "drifted"
		}
		return "tracking " + state.Living.LastKnownHash[:types.HashPrefixLen]
	case types.ArchetypeEpisodic:
		if state.Episodic.Consolidated {
			return fmt.Sprintf("consolidated (%d incidents)", state.Episodic.PatternCount)
		}
		return fmt.Sprintf("%d incidents", state.Episodic.PatternCount)
	case types.ArchetypeCumulative:
		if state.Cumulative.IsGap {
			return "gap"
		}
		return "validated " + state.Cumulative.LastValidatedAt.Format("2006-01-02")
	}
	return state.Archetype
}

func init() {
	showCmd.Flags().BoolVar(&showContent, "content", false, "also print artifact content")
}
