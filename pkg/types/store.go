package types

// Store defines the interface for backend-agnostic artifact storage.
// Callers attach to a backend, operate on artifacts and index records, and
// detach when done. Every mutation is atomic per artifact: a failed call
// leaves no partial state observable.
// Implements: prd001-store-core R2.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// RegisterArtifact stores a new artifact at path with its tier and
	// archetype, computes the content hash, and creates the matching
	// lifecycle state in the same transaction. Returns ErrDuplicatePath
	// if path is already registered.
	RegisterArtifact(path, content, tier, archetype string) (*Artifact, error)

	// GetArtifact returns the artifact at path, or ErrNotFound.
	GetArtifact(path string) (*Artifact, error)

	// UpdateArtifact replaces the artifact's content, recomputing
	// ContentHash, ByteSize, and ModifiedAt. Returns ErrNotFound if path
	// is not registered. Lifecycle state is untouched; drift against the
	// last acknowledged hash is the DriftDetector's concern.
	UpdateArtifact(path, content string) (*Artifact, error)

	// ArtifactExists reports whether path is registered.
	ArtifactExists(path string) (bool, error)

	// DeregisterArtifact removes the artifact and its lifecycle state.
	// Returns ErrArtifactReferenced while a manifest entry or brief still
	// points at the path; referencing records must be removed first.
	DeregisterArtifact(path string) error

	// ListArtifacts returns artifacts matching the filter, ordered by path.
	ListArtifacts(filter ArtifactFilter) ([]*Artifact, error)

	// GetLifecycleState returns the lifecycle state for the artifact at
	// path, or ErrNotFound.
	GetLifecycleState(path string) (*LifecycleState, error)

	// SaveLifecycleState persists a mutated lifecycle state. The state's
	// archetype must match the artifact's; ErrArchetypeMismatch otherwise.
	SaveLifecycleState(path string, state *LifecycleState) error

	// SaveBrief creates or replaces the domain brief keyed by DomainName.
	// The brief's artifact path must be registered; ErrNotFound otherwise.
	SaveBrief(brief *DomainBrief) error

	// GetBrief returns the brief for domain, or ErrDomainNotFound.
	GetBrief(domain string) (*DomainBrief, error)

	// ListBriefs returns all briefs ordered by domain name.
	ListBriefs() ([]*DomainBrief, error)

	// DeleteBrief removes the brief for domain, or ErrDomainNotFound.
	DeleteBrief(domain string) error

	// SaveManifestEntry creates or replaces the manifest entry keyed by
	// DomainName.
	SaveManifestEntry(entry *ManifestEntry) error

	// GetManifestEntry returns the manifest entry for domain, or
	// ErrDomainNotFound.
	GetManifestEntry(domain string) (*ManifestEntry, error)

	// ListManifestEntries returns all manifest entries ordered by domain
	// name, the manifest's rendering order.
	ListManifestEntries() ([]*ManifestEntry, error)

	// DeleteManifestEntry removes the manifest entry for domain, or
	// ErrDomainNotFound.
	DeleteManifestEntry(domain string) error
}
