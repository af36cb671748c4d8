package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/strata/pkg/tokens"
	"github.com/mesh-intelligence/strata/pkg/types"
)

// ManifestIndex renders the tier-0 manifest: one line per domain, the
// cross-cutting constraints, and a pointer to the search index artifact,
// all under a fixed token ceiling.
// Implements: prd007-manifest; docs/ARCHITECTURE § Manifest.
type ManifestIndex struct {
	store           types.Store
	est             tokens.Estimator
	ceiling         int
	constraints     []string
	searchIndexPath string
}

// NewManifestIndex creates a ManifestIndex with the ceiling from budgets.
// constraints are cross-cutting constraint lines carried verbatim into
// every render; searchIndexPath points at the rendered search index
// artifact.
func NewManifestIndex(store types.Store, budgets types.Budgets, constraints []string, searchIndexPath string) *ManifestIndex {
	return &ManifestIndex{
		store:           store,
		est:             tokens.NewEstimator(budgets.GetRunesPerToken()),
		ceiling:         budgets.GetManifestCeiling(),
		constraints:     constraints,
		searchIndexPath: searchIndexPath,
	}
}

// Render produces the manifest document. Entries whose brief artifact is a
// task-scoped artifact in shipped or archived state, or a consolidated
// episodic artifact, are demoted: present in the store, absent from the
// rendering. If the estimated token count of the result exceeds the
// ceiling, Render fails with BudgetExceededError and mutates nothing;
// truncation would silently drop constraints, so the caller must shrink an
// entry and retry.
func (m *ManifestIndex) Render() (string, error) {
	entries, err := m.store.ListManifestEntries()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("> strata manifest (tier 0)\n")
	sb.WriteString("> domain | brief_path | scope | hash_prefix | updated_at\n")
	for _, entry := range entries {
		demoted, err := m.demoted(entry.BriefPath)
		if err != nil {
			return "", err
		}
		if demoted {
			continue
		}
		sb.WriteString(entry.Line())
		sb.WriteByte('\n')
	}
	for _, c := range m.constraints {
		fmt.Fprintf(&sb, "> constraint: %s\n", c)
	}
	if m.searchIndexPath != "" {
		fmt.Fprintf(&sb, "> search-index: %s\n", m.searchIndexPath)
	}

	text := sb.String()
	if actual := m.est.Estimate(text); actual > m.ceiling {
		return "", &types.BudgetExceededError{Actual: actual, Limit: m.ceiling}
	}
	return text, nil
}

// demoted reports whether the artifact at path has left the manifest:
// shipped or archived task-scoped artifacts and consolidated episodic
// artifacts. Paths without a lifecycle state (external references) are
// never demoted.
func (m *ManifestIndex) demoted(path string) (bool, error) {
	state, err := m.store.GetLifecycleState(path)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	switch state.Archetype {
	case types.ArchetypeTaskScoped:
		return state.Task.Status == types.TaskShipped || state.Task.Status == types.TaskArchived, nil
	case types.ArchetypeEpisodic:
		return state.Episodic.Consolidated, nil
	}
	return false, nil
}

// ParseManifest reads a manifest document back into entries. Blank lines
// and comment lines starting with ">" are tolerated and ignored.
// Implements: prd007-manifest R4 (external format).
func ParseManifest(text string) ([]*types.ManifestEntry, error) {
	entries := []*types.ManifestEntry{}
	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ">") {
			continue
		}
		fields := strings.Split(trimmed, "|")
		if len(fields) != 5 {
			return nil, fmt.Errorf("manifest line %d: expected 5 fields, got %d", i+1, len(fields))
		}
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}
		updatedAt, err := time.Parse("2006-01-02", fields[4])
		if err != nil {
			return nil, fmt.Errorf("manifest line %d: %w", i+1, err)
		}
		entries = append(entries, &types.ManifestEntry{
			DomainName:        fields[0],
			BriefPath:         fields[1],
			OneLineScope:      fields[2],
			ContentHashPrefix: fields[3],
			UpdatedAt:         updatedAt,
		})
	}
	return entries, nil
}
