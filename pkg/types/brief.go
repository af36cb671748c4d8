package types

import (
	"strings"
	"time"
)

// DomainBrief is the tier-1 record for a knowledge domain: a pointer to the
// brief artifact plus the keyword set that feeds the search index and the
// ordered tier-2 reference paths.
// Implements: prd005-briefs R1.
type DomainBrief struct {
	DomainName     string    `json:"domain_name"` // Unique key.
	ArtifactPath   string    `json:"artifact_path"`
	TokenCount     int       `json:"token_count"`
	Keywords       []string  `json:"keywords"`
	ReferencePaths []string  `json:"reference_paths"`
	OverBudget     bool      `json:"over_budget"` // Set when TokenCount is outside the configured range.
	UpdatedAt      time.Time `json:"updated_at"`
}

// CheckBudget flags the brief when its token count falls outside
// [min, max]. Out-of-range briefs are flagged, never truncated; shrinking
// or growing content is an authoring action.
// Implements: prd005-briefs R2.
func (b *DomainBrief) CheckBudget(min, max int) {
	b.OverBudget = b.TokenCount < min || b.TokenCount > max
}

// NormalizeKeyword lower-cases and trims a keyword for index lookups.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// NormalizedKeywords returns the brief's keywords normalized, with empties
// dropped and duplicates removed, preserving first-seen order.
func (b *DomainBrief) NormalizedKeywords() []string {
	seen := make(map[string]bool, len(b.Keywords))
	result := make([]string, 0, len(b.Keywords))
	for _, k := range b.Keywords {
		n := NormalizeKeyword(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, n)
	}
	return result
}
