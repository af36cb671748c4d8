package engine

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/strata/pkg/types"
)

// DriftResult reports the outcome of a drift check. StoredHash and
// CurrentHash are set for living documents; LastValidatedAt for cumulative
// records.
type DriftResult struct {
	Path            string    `json:"path"`
	Archetype       string    `json:"archetype"`
	IsStale         bool      `json:"is_stale"`
	StoredHash      string    `json:"stored_hash,omitempty"`
	CurrentHash     string    `json:"current_hash,omitempty"`
	LastValidatedAt time.Time `json:"last_validated_at,omitzero"`
}

// DriftDetector flags staleness following the two-phase detect/confirm
// pattern: Check reads and never mutates; Acknowledge confirms that the
// caller has re-derived dependent content and updates the stored hash or
// validation timestamp.
// Implements: prd004-drift; docs/ARCHITECTURE § Drift Detection.
type DriftDetector struct {
	store  types.Store
	window time.Duration
	now    func() time.Time
}

// NewDriftDetector creates a DriftDetector with the staleness window from
// budgets. The window applies to cumulative records only.
func NewDriftDetector(store types.Store, budgets types.Budgets) *DriftDetector {
	return &DriftDetector{
		store:  store,
		window: time.Duration(budgets.GetStalenessWindowDays()) * 24 * time.Hour,
		now:    time.Now,
	}
}

// Check reports whether the artifact at path has drifted. Living documents
// compare the last acknowledged hash against the current content hash;
// cumulative records compare their validation timestamp against the
// staleness window. Task-scoped, decision, and episodic artifacts have no
// drift concept and always report fresh — their relevance is tracked by
// lifecycle transitions instead. Gap records are excluded and fail with
// ErrArchetypeMismatch. Check never mutates state.
func (d *DriftDetector) Check(path string) (*DriftResult, error) {
	artifact, err := d.store.GetArtifact(path)
	if err != nil {
		return nil, err
	}
	state, err := d.store.GetLifecycleState(path)
	if err != nil {
		return nil, err
	}

	result := &DriftResult{Path: path, Archetype: state.Archetype}
	switch state.Archetype {
	case types.ArchetypeLivingDocument:
		result.StoredHash = state.Living.LastKnownHash
		result.CurrentHash = artifact.ContentHash
		result.IsStale = result.StoredHash != result.CurrentHash
	case types.ArchetypeCumulative:
		if state.Cumulative.IsGap {
			return nil, fmt.Errorf("gap record %s: %w", path, types.ErrArchetypeMismatch)
		}
		result.LastValidatedAt = state.Cumulative.LastValidatedAt
		result.IsStale = d.now().Sub(state.Cumulative.LastValidatedAt) > d.window
	default:
		// No drift concept; lifecycle transitions govern relevance.
	}
	return result, nil
}

// Acknowledge confirms that dependent tier-1 content has been re-derived
// from the artifact at path. For living documents it records the current
// content hash and clears the drift flag; for cumulative records it
// refreshes the validation timestamp. Other archetypes fail with
// ErrArchetypeMismatch.
func (d *DriftDetector) Acknowledge(path string) error {
	artifact, err := d.store.GetArtifact(path)
	if err != nil {
		return err
	}
	state, err := d.store.GetLifecycleState(path)
	if err != nil {
		return err
	}

	switch state.Archetype {
	case types.ArchetypeLivingDocument:
		state.Living.LastKnownHash = artifact.ContentHash
		state.Living.Drift = false
	case types.ArchetypeCumulative:
		if state.Cumulative.IsGap {
			return fmt.Errorf("gap record %s: %w", path, types.ErrArchetypeMismatch)
		}
		state.Cumulative.Refresh(d.now())
	default:
		return fmt.Errorf("acknowledge %s (%s): %w", path, state.Archetype, types.ErrArchetypeMismatch)
	}
	return d.store.SaveLifecycleState(path, state)
}
