// Resolve command maps a domain name or keyword to an ordered artifact set.
// Implements: prd008-retrieval (CLI surface).
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <query>",
	Short: "Resolve a domain name or keyword to artifact paths",
	Long: `Resolve prints the minimal ordered artifact set for a query. A domain
name yields the manifest artifact followed by the domain's brief; a
keyword yields the matching briefs deduplicated by domain. Tier-2
references are never loaded automatically; fetch them with reference.
No match prints nothing and exits 0 — fall back to a full manifest scan.`,
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
		artifacts, err := eng.Resolve(args[0])
		if err != nil {
			return fmt.Errorf("resolve %q: %w", args[0], err)
		}

		if flagJSON {
			paths := []string{}
			for _, a := range artifacts {
				paths = append(paths, a.Path)
			}
			return printJSON(paths)
		}
		for _, a := range artifacts {
			fmt.Println(a.Path)
		}
		return nil
	},
}
