// Artifact table operations: register, get, update, exists, deregister,
// list. Register and deregister also maintain the one-to-one lifecycle
// state row inside the same transaction.
// Implements: prd001-store-core R3, R4; prd002-sqlite-backend R12.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/strata/pkg/types"
)

const artifactColumns = "artifact_id, path, content, content_hash, byte_size, tier, archetype, created_at, modified_at"

// RegisterArtifact stores a new artifact and its initial lifecycle state
// atomically. Returns ErrDuplicatePath if path is already registered.
func (b *Backend) RegisterArtifact(path, content, tier, archetype string) (*types.Artifact, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, types.ErrInvalidPath
	}
	if !types.ValidTier(tier) {
		return nil, types.ErrInvalidTier
	}
	if !types.ValidArchetype(archetype) {
		return nil, types.ErrInvalidArchetype
	}

	var exists bool
	err := b.db.QueryRow("SELECT 1 FROM artifacts WHERE path = ?", path).Scan(&exists)
	if err == nil {
		return nil, types.ErrDuplicatePath
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("checking artifact existence: %w", err)
	}

	now := time.Now().UTC()
	artifact := &types.Artifact{
		ArtifactID:  generateUUID(),
		Path:        path,
		Content:     content,
		ContentHash: types.HashContent(content),
		ByteSize:    int64(len(content)),
		Tier:        tier,
		Archetype:   archetype,
		CreatedAt:   now,
		ModifiedAt:  now,
	}

	state, err := types.NewLifecycleState(archetype, artifact.ContentHash, content != "", now)
	if err != nil {
		return nil, err
	}
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encoding lifecycle state: %w", err)
	}

	tx, err := b.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO artifacts ("+artifactColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		artifact.ArtifactID, artifact.Path, artifact.Content, artifact.ContentHash,
		artifact.ByteSize, artifact.Tier, artifact.Archetype,
		formatTime(artifact.CreatedAt), formatTime(artifact.ModifiedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting artifact: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO lifecycle_states (path, archetype, state_json, updated_at) VALUES (?, ?, ?, ?)",
		path, archetype, string(stateJSON), formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting lifecycle state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing registration: %w", err)
	}
	return artifact, nil
}

// GetArtifact retrieves the artifact at path.
func (b *Backend) GetArtifact(path string) (*types.Artifact, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	row := b.db.QueryRow("SELECT "+artifactColumns+" FROM artifacts WHERE path = ?", path)
	a, err := hydrateArtifact(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting artifact %s: %w", path, err)
	}
	return a, nil
}

// UpdateArtifact replaces the artifact's content, recomputing the content
// hash, byte size, and modification time in one transaction.
func (b *Backend) UpdateArtifact(path, content string) (*types.Artifact, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	row := b.db.QueryRow("SELECT "+artifactColumns+" FROM artifacts WHERE path = ?", path)
	a, err := hydrateArtifact(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting artifact %s: %w", path, err)
	}

	a.Content = content
	a.ContentHash = types.HashContent(content)
	a.ByteSize = int64(len(content))
	a.ModifiedAt = time.Now().UTC()

	tx, err := b.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"UPDATE artifacts SET content = ?, content_hash = ?, byte_size = ?, modified_at = ? WHERE path = ?",
		a.Content, a.ContentHash, a.ByteSize, formatTime(a.ModifiedAt), path,
	)
	if err != nil {
		return nil, fmt.Errorf("updating artifact: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing update: %w", err)
	}
	return a, nil
}

// ArtifactExists reports whether path is registered.
func (b *Backend) ArtifactExists(path string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return false, err
	}

	var one int
	err := b.db.QueryRow("SELECT 1 FROM artifacts WHERE path = ?", path).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking artifact existence: %w", err)
	}
	return true, nil
}

// DeregisterArtifact removes the artifact and its lifecycle state. An
// artifact referenced by a manifest entry or a brief (as the brief artifact
// or one of its reference paths) cannot be removed until those records are
// deleted.
func (b *Backend) DeregisterArtifact(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return err
	}

	var one int
	err := b.db.QueryRow("SELECT 1 FROM artifacts WHERE path = ?", path).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking artifact existence: %w", err)
	}

	referenced, err := b.pathReferenced(path)
	if err != nil {
		return err
	}
	if referenced {
		return types.ErrArtifactReferenced
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM lifecycle_states WHERE path = ?", path); err != nil {
		return fmt.Errorf("deleting lifecycle state: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM artifacts WHERE path = ?", path); err != nil {
		return fmt.Errorf("deleting artifact: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing deregistration: %w", err)
	}
	return nil
}

// pathReferenced reports whether any manifest entry or brief still points
// at path. The caller must hold b.mu.
func (b *Backend) pathReferenced(path string) (bool, error) {
	var one int
	err := b.db.QueryRow("SELECT 1 FROM manifest_entries WHERE brief_path = ?", path).Scan(&one)
	if err == nil {
		return true, nil
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("checking manifest references: %w", err)
	}

	err = b.db.QueryRow("SELECT 1 FROM briefs WHERE artifact_path = ?", path).Scan(&one)
	if err == nil {
		return true, nil
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("checking brief references: %w", err)
	}

	// Reference paths live inside a JSON array; scan briefs row by row.
	rows, err := b.db.Query("SELECT reference_paths_json FROM briefs")
	if err != nil {
		return false, fmt.Errorf("querying brief references: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var refsJSON string
		if err := rows.Scan(&refsJSON); err != nil {
			return false, fmt.Errorf("scanning brief references: %w", err)
		}
		var refs []string
		if err := json.Unmarshal([]byte(refsJSON), &refs); err != nil {
			return false, fmt.Errorf("decoding brief references: %w", err)
		}
		for _, r := range refs {
			if r == path {
				return true, nil
			}
		}
	}
	return false, rows.Err()
}

// ListArtifacts returns artifacts matching the filter, ordered by path.
func (b *Backend) ListArtifacts(filter types.ArtifactFilter) ([]*types.Artifact, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	query := "SELECT " + artifactColumns + " FROM artifacts"
	var conditions []string
	var args []any
	if filter.Tier != "" {
		conditions = append(conditions, "tier = ?")
		args = append(args, filter.Tier)
	}
	if filter.Archetype != "" {
		conditions = append(conditions, "archetype = ?")
		args = append(args, filter.Archetype)
	}
	for i, c := range conditions {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY path ASC"

	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing artifacts: %w", err)
	}
	defer rows.Close()

	results := []*types.Artifact{}
	for rows.Next() {
		a, err := hydrateArtifact(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating artifact: %w", err)
		}
		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating artifacts: %w", err)
	}
	return results, nil
}

// hydrateArtifact converts a scanned row into a *types.Artifact. scan is
// either (*sql.Row).Scan or (*sql.Rows).Scan.
func hydrateArtifact(scan func(dest ...any) error) (*types.Artifact, error) {
	var a types.Artifact
	var createdAt, modifiedAt string
	if err := scan(&a.ArtifactID, &a.Path, &a.Content, &a.ContentHash,
		&a.ByteSize, &a.Tier, &a.Archetype, &createdAt, &modifiedAt); err != nil {
		return nil, err
	}
	var err error
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if a.ModifiedAt, err = parseTime(modifiedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
