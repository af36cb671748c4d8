package types

import "time"

// TaskScoped statuses. A task-scoped artifact progresses through these
// states during its lifecycle.
// Implements: prd003-lifecycle R2.
const (
	TaskDraft    = "draft"
	TaskActive   = "active"
	TaskInReview = "in_review"
	TaskShipped  = "shipped"
	TaskArchived = "archived"
)

// taskTransitions maps each task status to the set of statuses reachable
// from it. Active -> Archived is allowed directly for abandoned work.
var taskTransitions = map[string]map[string]bool{
	TaskDraft:    {TaskActive: true},
	TaskActive:   {TaskInReview: true, TaskArchived: true},
	TaskInReview: {TaskShipped: true},
	TaskShipped:  {TaskArchived: true},
	TaskArchived: {},
}

// validTaskStatuses is the set of recognized task status values.
var validTaskStatuses = map[string]bool{
	TaskDraft:    true,
	TaskActive:   true,
	TaskInReview: true,
	TaskShipped:  true,
	TaskArchived: true,
}

// DecisionRecord statuses.
// Implements: prd003-lifecycle R3.
const (
	DecisionProposed   = "proposed"
	DecisionAccepted   = "accepted"
	DecisionDeprecated = "deprecated"
	DecisionSuperseded = "superseded"
)

// validDecisionStatuses is the set of recognized decision status values.
var validDecisionStatuses = map[string]bool{
	DecisionProposed:   true,
	DecisionAccepted:   true,
	DecisionDeprecated: true,
	DecisionSuperseded: true,
}

// ValidTaskStatus reports whether status is a recognized task status.
func ValidTaskStatus(status string) bool {
	return validTaskStatuses[status]
}

// ValidDecisionStatus reports whether status is a recognized decision status.
func ValidDecisionStatus(status string) bool {
	return validDecisionStatuses[status]
}

// CumulativeState tracks a cumulative knowledge record. A record with
// IsGap set represents known-missing knowledge: it exists in coverage
// listings but carries no content and is skipped by drift checks.
type CumulativeState struct {
	Topic           string    `json:"topic"`
	LastValidatedAt time.Time `json:"last_validated_at"`
	Confidence      string    `json:"confidence"`
	IsGap           bool      `json:"is_gap"`
}

// TaskState tracks a task-scoped artifact's status.
type TaskState struct {
	Status string `json:"status"`
}

// DecisionState tracks a decision record's status. Supersedes is the path
// of the replacing decision; set only when Status is "superseded".
type DecisionState struct {
	Status     string `json:"status"`
	Supersedes string `json:"supersedes,omitempty"`
}

// LivingState tracks a living document's drift against its last
// acknowledged content hash.
type LivingState struct {
	LastKnownHash string `json:"last_known_hash"`
	BriefHash     string `json:"brief_hash,omitempty"`
	Drift         bool   `json:"drift"`
}

// EpisodicState accumulates incident counts until consolidation.
type EpisodicState struct {
	PatternCount   int       `json:"pattern_count"`
	LastIncidentAt time.Time `json:"last_incident_at"`
	Consolidated   bool      `json:"consolidated"`
}

// LifecycleState is the tagged union of per-archetype state. Exactly one
// variant pointer is non-nil, matching Archetype. The variant shapes and
// transition rules are fully disjoint, which is why this is a union rather
// than an interface hierarchy.
// Implements: prd003-lifecycle R1, R4.
type LifecycleState struct {
	Archetype  string           `json:"archetype"`
	Cumulative *CumulativeState `json:"cumulative,omitempty"`
	Task       *TaskState       `json:"task,omitempty"`
	Decision   *DecisionState   `json:"decision,omitempty"`
	Living     *LivingState     `json:"living,omitempty"`
	Episodic   *EpisodicState   `json:"episodic,omitempty"`
}

// NewLifecycleState creates the initial lifecycle state for an artifact
// registered with the given archetype and content hash. Cumulative records
// registered without content start as gaps.
func NewLifecycleState(archetype, contentHash string, hasContent bool, now time.Time) (*LifecycleState, error) {
	switch archetype {
	case ArchetypeCumulative:
		return &LifecycleState{
			Archetype: archetype,
			Cumulative: &CumulativeState{
				LastValidatedAt: now,
				Confidence:      "medium",
				IsGap:           !hasContent,
			},
		}, nil
	case ArchetypeTaskScoped:
		return &LifecycleState{
			Archetype: archetype,
			Task:      &TaskState{Status: TaskDraft},
		}, nil
	case ArchetypeDecisionRecord:
		return &LifecycleState{
			Archetype: archetype,
			Decision:  &DecisionState{Status: DecisionProposed},
		}, nil
	case ArchetypeLivingDocument:
		return &LifecycleState{
			Archetype: archetype,
			Living:    &LivingState{LastKnownHash: contentHash},
		}, nil
	case ArchetypeEpisodic:
		return &LifecycleState{
			Archetype: archetype,
			Episodic:  &EpisodicState{},
		}, nil
	default:
		return nil, ErrInvalidArchetype
	}
}

// Validate checks the exactly-one-variant invariant: the variant matching
// Archetype is set and all others are nil.
func (s *LifecycleState) Validate() error {
	variants := 0
	var match bool
	if s.Cumulative != nil {
		variants++
		match = match || s.Archetype == ArchetypeCumulative
	}
	if s.Task != nil {
		variants++
		match = match || s.Archetype == ArchetypeTaskScoped
	}
	if s.Decision != nil {
		variants++
		match = match || s.Archetype == ArchetypeDecisionRecord
	}
	if s.Living != nil {
		variants++
		match = match || s.Archetype == ArchetypeLivingDocument
	}
	if s.Episodic != nil {
		variants++
		match = match || s.Archetype == ArchetypeEpisodic
	}
	if variants != 1 || !match {
		return ErrArchetypeMismatch
	}
	return nil
}

// Transition advances a task-scoped state along the allowed edges:
// draft -> active -> in_review -> shipped -> archived, plus the direct
// active -> archived edge for abandoned work. Self-transitions and every
// other edge are rejected with InvalidTransitionError.
// Implements: prd003-lifecycle R2.
func (t *TaskState) Transition(to string) error {
	if !validTaskStatuses[to] {
		return ErrInvalidState
	}
	if !taskTransitions[t.Status][to] {
		return &InvalidTransitionError{Archetype: ArchetypeTaskScoped, From: t.Status, To: to}
	}
	t.Status = to
	return nil
}

// Accept moves a proposed decision to accepted.
func (d *DecisionState) Accept() error {
	if d.Status != DecisionProposed {
		return &InvalidTransitionError{Archetype: ArchetypeDecisionRecord, From: d.Status, To: DecisionAccepted}
	}
	d.Status = DecisionAccepted
	return nil
}

// Deprecate retires an accepted decision without a replacement.
func (d *DecisionState) Deprecate() error {
	if d.Status != DecisionAccepted {
		return &InvalidTransitionError{Archetype: ArchetypeDecisionRecord, From: d.Status, To: DecisionDeprecated}
	}
	d.Status = DecisionDeprecated
	return nil
}

// Supersede retires an accepted decision in favor of the decision at
// supersedes. The back-reference is required; Deprecate covers retirement
// without one. Reverse transitions are forbidden.
func (d *DecisionState) Supersede(supersedes string) error {
	if supersedes == "" {
		return ErrSupersedesRequired
	}
	if d.Status != DecisionAccepted {
		return &InvalidTransitionError{Archetype: ArchetypeDecisionRecord, From: d.Status, To: DecisionSuperseded}
	}
	d.Status = DecisionSuperseded
	d.Supersedes = supersedes
	return nil
}

// RecordIncident increments the pattern count and stamps the incident time.
func (e *EpisodicState) RecordIncident(now time.Time) {
	e.PatternCount++
	e.LastIncidentAt = now
}

// Consolidate marks the episode as consolidated once the pattern count has
// reached threshold. Consolidated episodes stay in tier 2 but leave the
// manifest rendering. Idempotent once consolidated.
func (e *EpisodicState) Consolidate(threshold int) error {
	if e.Consolidated {
		return nil
	}
	if e.PatternCount < threshold {
		return ErrNotConsolidatable
	}
	e.Consolidated = true
	return nil
}

// MarkGap flags the record as known-missing knowledge.
func (c *CumulativeState) MarkGap() {
	c.IsGap = true
}

// Fill clears the gap flag once content has been registered and refreshes
// the validation timestamp.
func (c *CumulativeState) Fill(now time.Time) {
	c.IsGap = false
	c.LastValidatedAt = now
}

// Refresh updates the validation timestamp after a caller has re-derived
// dependent content.
func (c *CumulativeState) Refresh(now time.Time) {
	c.LastValidatedAt = now
}
