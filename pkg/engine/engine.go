package engine

import (
	"errors"
	"strings"
	"sync"

	"github.com/mesh-intelligence/strata/pkg/types"
)

// Engine is the retrieval facade: given a domain name or keyword, it
// returns the minimal ordered artifact set honoring the tier discipline.
// Resolve never loads tier-2 references; LoadReference is the explicit
// step down, keeping retrieval strictly progressive (tier 0 -> 1 -> 2).
type Engine struct {
	store        types.Store
	manifestPath string

	mu    sync.RWMutex
	index *SearchIndex
}

// New creates an Engine over store. manifestPath is the path of the
// rendered tier-0 manifest artifact, returned first by domain-name
// resolution; it may be empty when no manifest artifact is registered.
// The search index starts empty; call Reindex after briefs change.
func New(store types.Store, manifestPath string) *Engine {
	return &Engine{
		store:        store,
		manifestPath: manifestPath,
		index:        BuildIndex(nil),
	}
}

// Reindex rebuilds the search index from the current brief set and swaps
// it in atomically. This is the only mutating call on the Engine itself;
// it runs linearly in the number of briefs and touches no external I/O
// beyond the store.
func (e *Engine) Reindex() (*SearchIndex, error) {
	briefs, err := e.store.ListBriefs()
	if err != nil {
		return nil, err
	}
	idx := BuildIndex(briefs)
	e.mu.Lock()
	e.index = idx
	e.mu.Unlock()
	return idx, nil
}

// Index returns the current search index.
func (e *Engine) Index() *SearchIndex {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index
}

// Resolve maps a query to an ordered artifact sequence. A query matching a
// domain name returns the manifest artifact (when registered) followed by
// that domain's brief artifact. Otherwise the query is treated as a
// keyword: matching briefs are returned deduplicated by domain in
// first-seen index order. No match returns an empty sequence, never an
// error — the caller decides whether to fall back to a full manifest scan.
// Implements: prd008-retrieval R1.
func (e *Engine) Resolve(query string) ([]*types.Artifact, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []*types.Artifact{}, nil
	}

	entry, err := e.store.GetManifestEntry(q)
	if err == nil {
		return e.resolveDomain(entry)
	}
	if !errors.Is(err, types.ErrDomainNotFound) {
		return nil, err
	}

	results := []*types.Artifact{}
	seen := map[string]bool{}
	for _, hit := range e.Index().Lookup(q) {
		if seen[hit.DomainName] {
			continue
		}
		seen[hit.DomainName] = true
		artifact, err := e.store.GetArtifact(hit.Path)
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				continue
			}
			return nil, err
		}
		results = append(results, artifact)
	}
	return results, nil
}

// resolveDomain returns [manifest artifact, brief artifact] for a direct
// domain match, skipping either when not registered as an artifact.
func (e *Engine) resolveDomain(entry *types.ManifestEntry) ([]*types.Artifact, error) {
	results := []*types.Artifact{}
	if e.manifestPath != "" {
		manifest, err := e.store.GetArtifact(e.manifestPath)
		if err == nil {
			results = append(results, manifest)
		} else if !errors.Is(err, types.ErrNotFound) {
			return nil, err
		}
	}
	brief, err := e.store.GetArtifact(entry.BriefPath)
	if err == nil {
		results = append(results, brief)
	} else if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}
	return results, nil
}

// LoadReference loads a tier-2 reference artifact by path. This is the
// explicit step Resolve never takes on its own.
func (e *Engine) LoadReference(path string) (*types.Artifact, error) {
	return e.store.GetArtifact(path)
}
