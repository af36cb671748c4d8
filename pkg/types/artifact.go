package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Tier levels. Every artifact belongs to exactly one tier, assigned at
// registration. Tiers are ordered by increasing detail: the manifest is
// always loaded, briefs are loaded per domain, references on demand.
// Implements: prd001-store-core R2.
const (
	TierManifest  = "manifest"
	TierBrief     = "brief"
	TierReference = "reference"
)

// validTiers is the set of recognized tier values.
var validTiers = map[string]bool{
	TierManifest:  true,
	TierBrief:     true,
	TierReference: true,
}

// Lifecycle archetypes. Each artifact carries exactly one archetype,
// assigned at registration and immutable thereafter; changing the archetype
// requires deregistering and re-registering the artifact.
// Implements: prd003-lifecycle R1.
const (
	ArchetypeCumulative     = "cumulative"
	ArchetypeTaskScoped     = "task_scoped"
	ArchetypeDecisionRecord = "decision_record"
	ArchetypeLivingDocument = "living_document"
	ArchetypeEpisodic       = "episodic"
)

// validArchetypes is the set of recognized archetype values.
var validArchetypes = map[string]bool{
	ArchetypeCumulative:     true,
	ArchetypeTaskScoped:     true,
	ArchetypeDecisionRecord: true,
	ArchetypeLivingDocument: true,
	ArchetypeEpisodic:       true,
}

// ValidTier reports whether tier is a recognized tier value.
func ValidTier(tier string) bool {
	return validTiers[tier]
}

// ValidArchetype reports whether archetype is a recognized archetype value.
func ValidArchetype(archetype string) bool {
	return validArchetypes[archetype]
}

// HashPrefixLen is the number of hex digits of the content hash carried by
// manifest entries.
const HashPrefixLen = 8

// Artifact is a named, addressable unit of content. Artifacts are owned by
// the Store and mutated only through Store.UpdateArtifact, which recomputes
// ContentHash and ModifiedAt.
// Implements: prd001-store-core R1.
type Artifact struct {
	ArtifactID  string    `json:"artifact_id"`  // UUID v7, generated on registration.
	Path        string    `json:"path"`         // Unique key.
	Content     string    `json:"content"`      // Raw text content.
	ContentHash string    `json:"content_hash"` // SHA-256 hex digest of Content.
	ByteSize    int64     `json:"byte_size"`    // len(Content) in bytes.
	Tier        string    `json:"tier"`         // One of the Tier constants.
	Archetype   string    `json:"archetype"`    // One of the Archetype constants.
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// HashContent returns the SHA-256 hex digest of content. This is the
// canonical content hash used for drift detection and manifest prefixes.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// HashPrefix returns the first HashPrefixLen hex digits of the artifact's
// content hash, for display in manifest entries.
func (a *Artifact) HashPrefix() string {
	if len(a.ContentHash) < HashPrefixLen {
		return a.ContentHash
	}
	return a.ContentHash[:HashPrefixLen]
}

// ArtifactFilter narrows ListArtifacts results. Zero-value fields match
// everything.
type ArtifactFilter struct {
	Tier      string
	Archetype string
}
