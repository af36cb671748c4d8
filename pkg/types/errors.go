package types

import (
	"errors"
	"fmt"
)

// Store lifecycle errors (prd001-store-core R7.1).
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Store operation errors (prd001-store-core R7.2).
var (
	ErrNotFound           = errors.New("artifact not found")
	ErrDuplicatePath      = errors.New("artifact path already registered")
	ErrDomainNotFound     = errors.New("domain not found")
	ErrDuplicateDomain    = errors.New("domain already registered")
	ErrArtifactReferenced = errors.New("artifact is referenced by an index entry")
	ErrInvalidPath        = errors.New("artifact path must not be empty")
	ErrInvalidTier        = errors.New("invalid tier value")
	ErrInvalidArchetype   = errors.New("invalid archetype value")
)

// Lifecycle errors (prd003-lifecycle R7).
var (
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrInvalidState       = errors.New("invalid state value")
	ErrArchetypeMismatch  = errors.New("operation does not apply to this archetype")
	ErrNotConsolidatable  = errors.New("pattern count below consolidation threshold")
	ErrSupersedesRequired = errors.New("superseded decisions require a supersedes path")
)

// Rendering errors (prd007-manifest R5).
var (
	ErrBudgetExceeded    = errors.New("rendered output exceeds token budget")
	ErrBriefBelowMinimum = errors.New("brief is below the minimum token budget")
)

// InvalidTransitionError reports a rejected lifecycle transition with the
// archetype and the attempted edge. It matches ErrInvalidTransition under
// errors.Is so callers can branch without unpacking.
type InvalidTransitionError struct {
	Archetype string
	From      string
	To        string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition: %s -> %s", e.Archetype, e.From, e.To)
}

// Is makes errors.Is(err, ErrInvalidTransition) hold for this type.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// BudgetExceededError reports a failed render with the estimated token count
// and the configured limit, so the caller can shrink content and retry.
// The engine never truncates on its own. Matches ErrBudgetExceeded under
// errors.Is.
type BudgetExceededError struct {
	Actual int
	Limit  int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("token budget exceeded: %d > %d", e.Actual, e.Limit)
}

// Is makes errors.Is(err, ErrBudgetExceeded) hold for this type.
func (e *BudgetExceededError) Is(target error) bool {
	return target == ErrBudgetExceeded
}
