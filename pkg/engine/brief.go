package engine

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/strata/pkg/tokens"
	"github.com/mesh-intelligence/strata/pkg/types"
)

// Brief document section headers. A header line is the section name on its
// own line, optionally prefixed with markdown hashes and suffixed with a
// colon; matching is case-insensitive.
const (
	SectionMentalModel    = "mental model"
	SectionInvariants     = "invariants"
	SectionKeyPatterns    = "key patterns"
	SectionReferenceIndex = "reference index"
	SectionKeywords       = "keywords"
)

var briefSections = map[string]bool{
	SectionMentalModel:    true,
	SectionInvariants:     true,
	SectionKeyPatterns:    true,
	SectionReferenceIndex: true,
	SectionKeywords:       true,
}

// BriefDocument is the parsed form of a brief artifact: the keyword set
// that feeds the search index and the ordered tier-2 reference paths.
type BriefDocument struct {
	Keywords       []string
	ReferencePaths []string
}

// ParseBriefDocument extracts the Keywords and Reference Index sections
// from a brief artifact's content. The Keywords section is a single
// comma-separated line; the Reference Index lists one path per line,
// optionally bulleted. Unrecognized sections are ignored.
// Implements: prd005-briefs R4 (external format).
func ParseBriefDocument(content string) *BriefDocument {
	doc := &BriefDocument{Keywords: []string{}, ReferencePaths: []string{}}
	section := ""
	for _, line := range strings.Split(content, "\n") {
		if name, ok := sectionHeader(line); ok {
			section = name
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		switch section {
		case SectionKeywords:
			for _, k := range strings.Split(trimmed, ",") {
				if n := types.NormalizeKeyword(k); n != "" {
					doc.Keywords = append(doc.Keywords, n)
				}
			}
		case SectionReferenceIndex:
			path := strings.TrimSpace(strings.TrimLeft(trimmed, "-* "))
			if i := strings.IndexAny(path, " \t"); i >= 0 {
				path = path[:i]
			}
			if path != "" {
				doc.ReferencePaths = append(doc.ReferencePaths, path)
			}
		}
	}
	return doc
}

// sectionHeader reports whether line is a recognized section header and
// returns its canonical lower-case name.
func sectionHeader(line string) (string, bool) {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "# ")
	s = strings.TrimSuffix(s, ":")
	s = strings.ToLower(strings.TrimSpace(s))
	if briefSections[s] {
		return s, true
	}
	return "", false
}

// BriefStore manages tier-1 domain briefs over the artifact store,
// validating token budgets against the estimator.
// Implements: prd005-briefs R2, R3.
type BriefStore struct {
	store types.Store
	est   tokens.Estimator
	min   int
	max   int
}

// NewBriefStore creates a BriefStore with the brief budget range from
// budgets.
func NewBriefStore(store types.Store, budgets types.Budgets) *BriefStore {
	return &BriefStore{
		store: store,
		est:   tokens.NewEstimator(budgets.GetRunesPerToken()),
		min:   budgets.GetBriefMin(),
		max:   budgets.GetBriefMax(),
	}
}

// Add parses the brief artifact at artifactPath and creates or replaces
// the brief record for domain. The token count is estimated from the full
// artifact content; out-of-range briefs are flagged via OverBudget, never
// rejected or truncated. Call Add again after the artifact changes to
// re-derive keywords and the token count.
func (s *BriefStore) Add(domain, artifactPath string) (*types.DomainBrief, error) {
	if domain == "" {
		return nil, types.ErrDomainNotFound
	}
	artifact, err := s.store.GetArtifact(artifactPath)
	if err != nil {
		return nil, err
	}

	doc := ParseBriefDocument(artifact.Content)
	brief := &types.DomainBrief{
		DomainName:     domain,
		ArtifactPath:   artifactPath,
		TokenCount:     s.est.Estimate(artifact.Content),
		Keywords:       doc.Keywords,
		ReferencePaths: doc.ReferencePaths,
	}
	brief.CheckBudget(s.min, s.max)

	if err := s.store.SaveBrief(brief); err != nil {
		return nil, err
	}
	return brief, nil
}

// Get returns the brief record for domain.
func (s *BriefStore) Get(domain string) (*types.DomainBrief, error) {
	return s.store.GetBrief(domain)
}

// Render returns the brief artifact's content after checking it against
// the configured budget range. Content above the maximum fails with
// BudgetExceededError; content below the minimum with
// ErrBriefBelowMinimum. The engine never truncates — shrinking or growing
// a brief is an authoring action.
func (s *BriefStore) Render(domain string) (string, error) {
	brief, err := s.store.GetBrief(domain)
	if err != nil {
		return "", err
	}
	artifact, err := s.store.GetArtifact(brief.ArtifactPath)
	if err != nil {
		return "", err
	}

	actual := s.est.Estimate(artifact.Content)
	if actual > s.max {
		return "", &types.BudgetExceededError{Actual: actual, Limit: s.max}
	}
	if actual < s.min {
		return "", fmt.Errorf("%w: %d < %d", types.ErrBriefBelowMinimum, actual, s.min)
	}
	return artifact.Content, nil
}
