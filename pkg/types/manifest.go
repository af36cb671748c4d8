package types

import (
	"fmt"
	"time"
)

// ManifestEntry is one tier-0 line: a domain, the path of its brief, a
// one-line scope, the brief artifact's content hash prefix, and the last
// update time.
// Implements: prd007-manifest R1.
type ManifestEntry struct {
	DomainName        string    `json:"domain_name"` // Unique key.
	BriefPath         string    `json:"brief_path"`
	OneLineScope      string    `json:"one_line_scope"`
	ContentHashPrefix string    `json:"content_hash_prefix"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Line renders the entry in the pipe-delimited manifest document format:
// domain | brief_path | scope | hash_prefix | updated_at.
func (e *ManifestEntry) Line() string {
	return fmt.Sprintf("%s | %s | %s | %s | %s",
		e.DomainName, e.BriefPath, e.OneLineScope,
		e.ContentHashPrefix, e.UpdatedAt.UTC().Format("2006-01-02"))
}

// SearchEntry is one row of the cross-domain keyword index. Keywords are
// not unique: one keyword may map to several domains, and lookups return
// the full matching set.
// Implements: prd006-search R1.
type SearchEntry struct {
	Keyword        string `json:"keyword"`
	DomainName     string `json:"domain_name"`
	Tier           string `json:"tier"`
	Path           string `json:"path"`
	ContextSnippet string `json:"context_snippet"`
}

// Line renders the entry in the search index document format:
// keyword | domain | tier | path | context.
func (e *SearchEntry) Line() string {
	return fmt.Sprintf("%s | %s | %s | %s | %s",
		e.Keyword, e.DomainName, e.Tier, e.Path, e.ContextSnippet)
}
