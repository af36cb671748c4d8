package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHashContent(t *testing.T) {
	// Known SHA-256 vectors.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashContent(""))
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		HashContent("hello"))

	// Deterministic, content-sensitive.
	assert.Equal(t, HashContent("auth notes"), HashContent("auth notes"))
	assert.NotEqual(t, HashContent("auth notes"), HashContent("auth notes."))
}

func TestArtifactHashPrefix(t *testing.T) {
	a := &Artifact{ContentHash: HashContent("hello")}
	assert.Equal(t, "2cf24dba", a.HashPrefix())
	assert.Len(t, a.HashPrefix(), HashPrefixLen)

	short := &Artifact{ContentHash: "abc"}
	assert.Equal(t, "abc", short.HashPrefix())
}

func TestValidTierAndArchetype(t *testing.T) {
	for _, tier := range []string{TierManifest, TierBrief, TierReference} {
		assert.True(t, ValidTier(tier), tier)
	}
	assert.False(t, ValidTier("tier0"))
	assert.False(t, ValidTier(""))

	for _, a := range []string{
		ArchetypeCumulative, ArchetypeTaskScoped, ArchetypeDecisionRecord,
		ArchetypeLivingDocument, ArchetypeEpisodic,
	} {
		assert.True(t, ValidArchetype(a), a)
	}
	assert.False(t, ValidArchetype("seasonal"))
	assert.False(t, ValidArchetype(""))
}

func TestDomainBriefCheckBudget(t *testing.T) {
	tests := []struct {
		name       string
		tokens     int
		overBudget bool
	}{
		{name: "below minimum", tokens: 299, overBudget: true},
		{name: "at minimum", tokens: 300},
		{name: "within range", tokens: 500},
		{name: "at maximum", tokens: 800},
		{name: "above maximum", tokens: 801, overBudget: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &DomainBrief{TokenCount: tt.tokens}
			b.CheckBudget(300, 800)
			assert.Equal(t, tt.overBudget, b.OverBudget)
		})
	}
}

func TestNormalizedKeywords(t *testing.T) {
	b := &DomainBrief{Keywords: []string{" OAuth2 ", "jwt", "JWT", "", "  ", "authentication"}}
	assert.Equal(t, []string{"oauth2", "jwt", "authentication"}, b.NormalizedKeywords())
}

func TestManifestEntryLine(t *testing.T) {
	e := &ManifestEntry{
		DomainName:        "auth",
		BriefPath:         "briefs/auth.md",
		OneLineScope:      "authentication and session handling",
		ContentHashPrefix: "2cf24dba",
		UpdatedAt:         time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	assert.Equal(t,
		"auth | briefs/auth.md | authentication and session handling | 2cf24dba | 2026-03-14",
		e.Line())
}

func TestSearchEntryLine(t *testing.T) {
	e := &SearchEntry{
		Keyword:        "jwt",
		DomainName:     "auth",
		Tier:           TierBrief,
		Path:           "briefs/auth.md",
		ContextSnippet: "authentication, oauth2, jwt",
	}
	assert.Equal(t, "jwt | auth | brief | briefs/auth.md | authentication, oauth2, jwt", e.Line())
}
