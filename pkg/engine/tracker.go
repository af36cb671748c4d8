package engine

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/strata/pkg/types"
)

// TransitionResult reports an applied lifecycle transition.
// PromotionRequired is set when a task-scoped artifact enters "shipped":
// durable knowledge from the task should migrate to decision-record or
// living-document artifacts. The migration itself is an authoring action;
// the tracker only raises the signal.
type TransitionResult struct {
	Path              string `json:"path"`
	Archetype         string `json:"archetype"`
	From              string `json:"from"`
	To                string `json:"to"`
	PromotionRequired bool   `json:"promotion_required,omitempty"`
}

// Tracker applies lifecycle transitions to artifact states. All
// transitions are explicit calls; nothing transitions implicitly, and no
// transition has side effects beyond the state record itself.
// Implements: prd003-lifecycle R2-R6.
type Tracker struct {
	store     types.Store
	threshold int
	now       func() time.Time
}

// NewTracker creates a Tracker with the consolidation threshold from
// budgets.
func NewTracker(store types.Store, budgets types.Budgets) *Tracker {
	return &Tracker{
		store:     store,
		threshold: budgets.GetConsolidationThreshold(),
		now:       time.Now,
	}
}

// Transition moves the artifact at path to the target status. Task-scoped
// artifacts follow draft -> active -> in_review -> shipped -> archived
// (plus active -> archived); decision records follow proposed -> accepted
// -> deprecated|superseded, where superseding requires the supersedes
// path. Archetypes without named statuses fail with ErrArchetypeMismatch.
func (t *Tracker) Transition(path, target, supersedes string) (*TransitionResult, error) {
	state, err := t.store.GetLifecycleState(path)
	if err != nil {
		return nil, err
	}

	result := &TransitionResult{Path: path, Archetype: state.Archetype, To: target}
	switch state.Archetype {
	case types.ArchetypeTaskScoped:
		result.From = state.Task.Status
		if err := state.Task.Transition(target); err != nil {
			return nil, err
		}
		result.PromotionRequired = target == types.TaskShipped
	case types.ArchetypeDecisionRecord:
		result.From = state.Decision.Status
		switch target {
		case types.DecisionAccepted:
			err = state.Decision.Accept()
		case types.DecisionDeprecated:
			err = state.Decision.Deprecate()
		case types.DecisionSuperseded:
			err = state.Decision.Supersede(supersedes)
		default:
			if types.ValidDecisionStatus(target) {
				// Valid status, but no edge leads to it (e.g. back to
				// proposed): a rejected transition, not a bad value.
				err = &types.InvalidTransitionError{
					Archetype: types.ArchetypeDecisionRecord,
					From:      state.Decision.Status,
					To:        target,
				}
			} else {
				err = types.ErrInvalidState
			}
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("transition %s (%s): %w", path, state.Archetype, types.ErrArchetypeMismatch)
	}

	if err := t.store.SaveLifecycleState(path, state); err != nil {
		return nil, err
	}
	return result, nil
}

// RecordIncident increments the episodic pattern count for the artifact at
// path and returns the updated state.
func (t *Tracker) RecordIncident(path string) (*types.EpisodicState, error) {
	state, err := t.store.GetLifecycleState(path)
	if err != nil {
		return nil, err
	}
	if state.Archetype != types.ArchetypeEpisodic {
		return nil, fmt.Errorf("incident %s (%s): %w", path, state.Archetype, types.ErrArchetypeMismatch)
	}
	state.Episodic.RecordIncident(t.now())
	if err := t.store.SaveLifecycleState(path, state); err != nil {
		return nil, err
	}
	return state.Episodic, nil
}

// Consolidate marks the episodic artifact at path as consolidated once its
// pattern count has reached the configured threshold. Consolidated
// episodes stay in tier 2 but are excluded from manifest rendering.
func (t *Tracker) Consolidate(path string) error {
	state, err := t.store.GetLifecycleState(path)
	if err != nil {
		return err
	}
	if state.Archetype != types.ArchetypeEpisodic {
		return fmt.Errorf("consolidate %s (%s): %w", path, state.Archetype, types.ErrArchetypeMismatch)
	}
	if err := state.Episodic.Consolidate(t.threshold); err != nil {
		return err
	}
	return t.store.SaveLifecycleState(path, state)
}

// MarkGap flags the cumulative artifact at path as known-missing
// knowledge.
func (t *Tracker) MarkGap(path string) error {
	state, err := t.store.GetLifecycleState(path)
	if err != nil {
		return err
	}
	if state.Archetype != types.ArchetypeCumulative {
		return fmt.Errorf("mark gap %s (%s): %w", path, state.Archetype, types.ErrArchetypeMismatch)
	}
	state.Cumulative.MarkGap()
	return t.store.SaveLifecycleState(path, state)
}

// FillGap clears the gap flag after content has been registered for the
// cumulative artifact at path.
func (t *Tracker) FillGap(path string) error {
	state, err := t.store.GetLifecycleState(path)
	if err != nil {
		return err
	}
	if state.Archetype != types.ArchetypeCumulative {
		return fmt.Errorf("fill gap %s (%s): %w", path, state.Archetype, types.ErrArchetypeMismatch)
	}
	state.Cumulative.Fill(t.now())
	return t.store.SaveLifecycleState(path, state)
}

// ListGaps returns the paths of cumulative records currently flagged as
// gaps, in listing order. Gaps are first-class records: a known-missing
// topic is distinct from an absent index entry.
func (t *Tracker) ListGaps() ([]string, error) {
	artifacts, err := t.store.ListArtifacts(types.ArtifactFilter{Archetype: types.ArchetypeCumulative})
	if err != nil {
		return nil, err
	}
	gaps := []string{}
	for _, a := range artifacts {
		state, err := t.store.GetLifecycleState(a.Path)
		if err != nil {
			return nil, err
		}
		if state.Cumulative != nil && state.Cumulative.IsGap {
			gaps = append(gaps, a.Path)
		}
	}
	return gaps, nil
}
