// Lifecycle state table operations. One row per artifact, keyed by path;
// the state body is the JSON-encoded tagged union.
// Implements: prd003-lifecycle R5; prd002-sqlite-backend R13.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/strata/pkg/types"
)

// GetLifecycleState returns the lifecycle state for the artifact at path.
func (b *Backend) GetLifecycleState(path string) (*types.LifecycleState, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	return b.getLifecycleStateLocked(path)
}

// getLifecycleStateLocked reads a state row. The caller must hold b.mu.
func (b *Backend) getLifecycleStateLocked(path string) (*types.LifecycleState, error) {
	var stateJSON string
	err := b.db.QueryRow("SELECT state_json FROM lifecycle_states WHERE path = ?", path).Scan(&stateJSON)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting lifecycle state %s: %w", path, err)
	}

	var state types.LifecycleState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("decoding lifecycle state %s: %w", path, err)
	}
	return &state, nil
}

// SaveLifecycleState persists a mutated lifecycle state. The state must
// satisfy the exactly-one-variant invariant and match the artifact's
// archetype.
func (b *Backend) SaveLifecycleState(path string, state *types.LifecycleState) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return err
	}
	if err := state.Validate(); err != nil {
		return err
	}

	var archetype string
	err := b.db.QueryRow("SELECT archetype FROM artifacts WHERE path = ?", path).Scan(&archetype)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("getting artifact archetype: %w", err)
	}
	if archetype != state.Archetype {
		return types.ErrArchetypeMismatch
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding lifecycle state: %w", err)
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"UPDATE lifecycle_states SET state_json = ?, updated_at = ? WHERE path = ?",
		string(stateJSON), formatTime(time.Now().UTC()), path,
	)
	if err != nil {
		return fmt.Errorf("updating lifecycle state: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing lifecycle state: %w", err)
	}
	return nil
}
