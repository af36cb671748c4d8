package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/strata/pkg/types"
)

func TestTrackerTaskTransitions(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterArtifact("tasks/migration.md", "plan", types.TierReference, types.ArchetypeTaskScoped)
	require.NoError(t, err)

	tracker := NewTracker(store, types.Budgets{})

	result, err := tracker.Transition("tasks/migration.md", types.TaskActive, "")
	require.NoError(t, err)
	assert.Equal(t, types.TaskDraft, result.From)
	assert.Equal(t, types.TaskActive, result.To)
	assert.False(t, result.PromotionRequired)

	_, err = tracker.Transition("tasks/migration.md", types.TaskInReview, "")
	require.NoError(t, err)

	// Shipping raises the promotion signal.
	result, err = tracker.Transition("tasks/migration.md", types.TaskShipped, "")
	require.NoError(t, err)
	assert.True(t, result.PromotionRequired)

	// Transitions persist.
	state, err := store.GetLifecycleState("tasks/migration.md")
	require.NoError(t, err)
	assert.Equal(t, types.TaskShipped, state.Task.Status)
}

func TestTrackerTaskInvalidTransitionPersistsNothing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterArtifact("tasks/migration.md", "plan", types.TierReference, types.ArchetypeTaskScoped)
	require.NoError(t, err)

	tracker := NewTracker(store, types.Budgets{})
	_, err = tracker.Transition("tasks/migration.md", types.TaskShipped, "")
	assert.ErrorIs(t, err, types.ErrInvalidTransition)

	state, err := store.GetLifecycleState("tasks/migration.md")
	require.NoError(t, err)
	assert.Equal(t, types.TaskDraft, state.Task.Status)
}

func TestTrackerDecisionTransitions(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterArtifact("decisions/adr-001.md", "use sqlite", types.TierReference, types.ArchetypeDecisionRecord)
	require.NoError(t, err)

	tracker := NewTracker(store, types.Budgets{})

	result, err := tracker.Transition("decisions/adr-001.md", types.DecisionAccepted, "")
	require.NoError(t, err)
	assert.Equal(t, types.DecisionProposed, result.From)

	// Superseding requires the replacement path.
	_, err = tracker.Transition("decisions/adr-001.md", types.DecisionSuperseded, "")
	assert.ErrorIs(t, err, types.ErrSupersedesRequired)

	_, err = tracker.Transition("decisions/adr-001.md", types.DecisionSuperseded, "decisions/adr-002.md")
	require.NoError(t, err)

	state, err := store.GetLifecycleState("decisions/adr-001.md")
	require.NoError(t, err)
	assert.Equal(t, types.DecisionSuperseded, state.Decision.Status)
	assert.Equal(t, "decisions/adr-002.md", state.Decision.Supersedes)
}

func TestTrackerDecisionReverseTransition(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterArtifact("decisions/adr-001.md", "use sqlite", types.TierReference, types.ArchetypeDecisionRecord)
	require.NoError(t, err)

	tracker := NewTracker(store, types.Budgets{})
	_, err = tracker.Transition("decisions/adr-001.md", types.DecisionAccepted, "")
	require.NoError(t, err)

	// Back to proposed is a valid status but a forbidden edge: it must
	// surface as a rejected transition, not a bad status value.
	_, err = tracker.Transition("decisions/adr-001.md", types.DecisionProposed, "")
	require.ErrorIs(t, err, types.ErrInvalidTransition)
	assert.NotErrorIs(t, err, types.ErrInvalidState)

	var ite *types.InvalidTransitionError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, types.ArchetypeDecisionRecord, ite.Archetype)
	assert.Equal(t, types.DecisionAccepted, ite.From)
	assert.Equal(t, types.DecisionProposed, ite.To)

	state, err := store.GetLifecycleState("decisions/adr-001.md")
	require.NoError(t, err)
	assert.Equal(t, types.DecisionAccepted, state.Decision.Status)
}

func TestTrackerDecisionUnknownTarget(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterArtifact("decisions/adr-001.md", "x", types.TierReference, types.ArchetypeDecisionRecord)
	require.NoError(t, err)

	tracker := NewTracker(store, types.Budgets{})
	_, err = tracker.Transition("decisions/adr-001.md", "rejected", "")
	assert.ErrorIs(t, err, types.ErrInvalidState)
}

func TestTrackerTransitionWrongArchetype(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterArtifact("docs/api.md", "x", types.TierReference, types.ArchetypeLivingDocument)
	require.NoError(t, err)

	tracker := NewTracker(store, types.Budgets{})
	_, err = tracker.Transition("docs/api.md", types.TaskActive, "")
	assert.ErrorIs(t, err, types.ErrArchetypeMismatch)
}

func TestTrackerIncidentAndConsolidate(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterArtifact("refs/incident-7.md", "timeout spike", types.TierReference, types.ArchetypeEpisodic)
	require.NoError(t, err)

	tracker := NewTracker(store, types.Budgets{ConsolidationThreshold: 3})

	// Below the threshold: consolidation refused.
	for i := 1; i <= 2; i++ {
		episodic, err := tracker.RecordIncident("refs/incident-7.md")
		require.NoError(t, err)
		assert.Equal(t, i, episodic.PatternCount)
	}
	assert.ErrorIs(t, tracker.Consolidate("refs/incident-7.md"), types.ErrNotConsolidatable)

	_, err = tracker.RecordIncident("refs/incident-7.md")
	require.NoError(t, err)
	require.NoError(t, tracker.Consolidate("refs/incident-7.md"))

	state, err := store.GetLifecycleState("refs/incident-7.md")
	require.NoError(t, err)
	assert.True(t, state.Episodic.Consolidated)
	assert.False(t, state.Episodic.LastIncidentAt.IsZero())
}

func TestTrackerIncidentWrongArchetype(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterArtifact("tasks/migration.md", "x", types.TierReference, types.ArchetypeTaskScoped)
	require.NoError(t, err)

	tracker := NewTracker(store, types.Budgets{})
	_, err = tracker.RecordIncident("tasks/migration.md")
	assert.ErrorIs(t, err, types.ErrArchetypeMismatch)
	assert.ErrorIs(t, tracker.Consolidate("tasks/migration.md"), types.ErrArchetypeMismatch)
}

func TestTrackerGaps(t *testing.T) {
	store := newTestStore(t)
	// Empty cumulative record starts as a gap; a filled one does not.
	_, err := store.RegisterArtifact("gaps/kafka.md", "", types.TierReference, types.ArchetypeCumulative)
	require.NoError(t, err)
	_, err = store.RegisterArtifact("refs/sql.md", "notes", types.TierReference, types.ArchetypeCumulative)
	require.NoError(t, err)

	tracker := NewTracker(store, types.Budgets{})

	gaps, err := tracker.ListGaps()
	require.NoError(t, err)
	assert.Equal(t, []string{"gaps/kafka.md"}, gaps)

	// Fill after content exists.
	_, err = store.UpdateArtifact("gaps/kafka.md", "kafka partitioning notes")
	require.NoError(t, err)
	require.NoError(t, tracker.FillGap("gaps/kafka.md"))
	gaps, err = tracker.ListGaps()
	require.NoError(t, err)
	assert.Empty(t, gaps)

	// Mark an existing record as a gap again.
	require.NoError(t, tracker.MarkGap("refs/sql.md"))
	gaps, err = tracker.ListGaps()
	require.NoError(t, err)
	assert.Equal(t, []string{"refs/sql.md"}, gaps)
}

func TestTrackerGapWrongArchetype(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterArtifact("docs/api.md", "x", types.TierReference, types.ArchetypeLivingDocument)
	require.NoError(t, err)

	tracker := NewTracker(store, types.Budgets{})
	assert.ErrorIs(t, tracker.MarkGap("docs/api.md"), types.ErrArchetypeMismatch)
	assert.ErrorIs(t, tracker.FillGap("docs/api.md"), types.ErrArchetypeMismatch)
}
