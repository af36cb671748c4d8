package engine

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/strata/pkg/types"
)

// SearchIndex is the inverted keyword index over domain briefs. It is not
// incremental: correctness depends on rebuilding it with BuildIndex after
// any brief's keyword set changes, never on patching deltas, so the index
// cannot drift silently from its source briefs.
// Implements: prd006-search; docs/ARCHITECTURE § Search Index.
type SearchIndex struct {
	entries   []types.SearchEntry
	byKeyword map[string][]types.SearchEntry
}

// BuildIndex constructs the full index from the given briefs. Building is
// deterministic and idempotent: entries are sorted by keyword, then domain
// name, so two builds from the same brief set render byte-identically.
func BuildIndex(briefs []*types.DomainBrief) *SearchIndex {
	idx := &SearchIndex{
		entries:   []types.SearchEntry{},
		byKeyword: make(map[string][]types.SearchEntry),
	}
	for _, brief := range briefs {
		keywords := brief.NormalizedKeywords()
		snippet := strings.Join(keywords, ", ")
		for _, keyword := range keywords {
			idx.entries = append(idx.entries, types.SearchEntry{
				Keyword:        keyword,
				DomainName:     brief.DomainName,
				Tier:           types.TierBrief,
				Path:           brief.ArtifactPath,
				ContextSnippet: snippet,
			})
		}
	}
	sort.Slice(idx.entries, func(i, j int) bool {
		if idx.entries[i].Keyword != idx.entries[j].Keyword {
			return idx.entries[i].Keyword < idx.entries[j].Keyword
		}
		return idx.entries[i].DomainName < idx.entries[j].DomainName
	})
	for _, e := range idx.entries {
		idx.byKeyword[e.Keyword] = append(idx.byKeyword[e.Keyword], e)
	}
	return idx
}

// Lookup returns all entries matching the normalized (lower-cased,
// trimmed) keyword exactly. Unknown keywords return an empty set, never an
// error. A keyword may map to several domains; the full matching set is
// returned in domain order.
func (idx *SearchIndex) Lookup(keyword string) []types.SearchEntry {
	hits := idx.byKeyword[types.NormalizeKeyword(keyword)]
	out := make([]types.SearchEntry, len(hits))
	copy(out, hits)
	return out
}

// Entries returns a copy of all index entries in sorted order.
func (idx *SearchIndex) Entries() []types.SearchEntry {
	out := make([]types.SearchEntry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// Len returns the number of index entries.
func (idx *SearchIndex) Len() int {
	return len(idx.entries)
}

// Render produces the search index document: a comment header followed by
// one "keyword | domain | tier | path | context" row per entry, in index
// sort order.
func (idx *SearchIndex) Render() string {
	var sb strings.Builder
	sb.WriteString("> strata search index\n")
	sb.WriteString("> keyword | domain | tier | path | context\n")
	for _, e := range idx.entries {
		sb.WriteString(e.Line())
		sb.WriteByte('\n')
	}
	return sb.String()
}
