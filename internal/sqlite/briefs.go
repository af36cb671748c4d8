// Brief table operations. Briefs are keyed by domain name; keyword and
// reference-path lists are stored as JSON arrays.
// Implements: prd005-briefs R3; prd002-sqlite-backend R14.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/strata/pkg/types"
)

const briefColumns = "domain_name, artifact_path, token_count, keywords_json, reference_paths_json, over_budget, updated_at"

// SaveBrief creates or replaces the brief keyed by DomainName. The brief's
// artifact path must already be registered.
func (b *Backend) SaveBrief(brief *types.DomainBrief) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return err
	}
	if brief.DomainName == "" {
		return types.ErrDomainNotFound
	}

	var one int
	err := b.db.QueryRow("SELECT 1 FROM artifacts WHERE path = ?", brief.ArtifactPath).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking brief artifact: %w", err)
	}

	keywordsJSON, err := json.Marshal(brief.Keywords)
	if err != nil {
		return fmt.Errorf("encoding keywords: %w", err)
	}
	refsJSON, err := json.Marshal(brief.ReferencePaths)
	if err != nil {
		return fmt.Errorf("encoding reference paths: %w", err)
	}

	brief.UpdatedAt = time.Now().UTC()

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO briefs (`+briefColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(domain_name) DO UPDATE SET
		   artifact_path = excluded.artifact_path,
		   token_count = excluded.token_count,
		   keywords_json = excluded.keywords_json,
		   reference_paths_json = excluded.reference_paths_json,
		   over_budget = excluded.over_budget,
		   updated_at = excluded.updated_at`,
		brief.DomainName, brief.ArtifactPath, brief.TokenCount,
		string(keywordsJSON), string(refsJSON), boolToInt(brief.OverBudget),
		formatTime(brief.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("persisting brief: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing brief: %w", err)
	}
	return nil
}

// GetBrief returns the brief for domain.
func (b *Backend) GetBrief(domain string) (*types.DomainBrief, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	row := b.db.QueryRow("SELECT "+briefColumns+" FROM briefs WHERE domain_name = ?", domain)
	brief, err := hydrateBrief(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrDomainNotFound
		}
		return nil, fmt.Errorf("getting brief %s: %w", domain, err)
	}
	return brief, nil
}

// ListBriefs returns all briefs ordered by domain name.
func (b *Backend) ListBriefs() ([]*types.DomainBrief, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query("SELECT " + briefColumns + " FROM briefs ORDER BY domain_name ASC")
	if err != nil {
		return nil, fmt.Errorf("listing briefs: %w", err)
	}
	defer rows.Close()

	results := []*types.DomainBrief{}
	for rows.Next() {
		brief, err := hydrateBrief(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating brief: %w", err)
		}
		results = append(results, brief)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating briefs: %w", err)
	}
	return results, nil
}

// DeleteBrief removes the brief for domain.
func (b *Backend) DeleteBrief(domain string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return err
	}

	res, err := b.db.Exec("DELETE FROM briefs WHERE domain_name = ?", domain)
	if err != nil {
		return fmt.Errorf("deleting brief: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting brief: %w", err)
	}
	if n == 0 {
		return types.ErrDomainNotFound
	}
	return nil
}

// hydrateBrief converts a scanned row into a *types.DomainBrief.
func hydrateBrief(scan func(dest ...any) error) (*types.DomainBrief, error) {
	var brief types.DomainBrief
	var keywordsJSON, refsJSON, updatedAt string
	var overBudget int
	if err := scan(&brief.DomainName, &brief.ArtifactPath, &brief.TokenCount,
		&keywordsJSON, &refsJSON, &overBudget, &updatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(keywordsJSON), &brief.Keywords); err != nil {
		return nil, fmt.Errorf("decoding keywords: %w", err)
	}
	if err := json.Unmarshal([]byte(refsJSON), &brief.ReferencePaths); err != nil {
		return nil, fmt.Errorf("decoding reference paths: %w", err)
	}
	brief.OverBudget = overBudget != 0
	var err error
	if brief.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &brief, nil
}

// boolToInt stores booleans as SQLite integers.
func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
