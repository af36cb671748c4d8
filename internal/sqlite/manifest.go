// Manifest entry table operations, keyed by domain name. Listing order is
// domain name ascending, which is also the manifest rendering order.
// Implements: prd007-manifest R2; prd002-sqlite-backend R15.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/strata/pkg/types"
)

const manifestColumns = "domain_name, brief_path, one_line_scope, content_hash_prefix, updated_at"

// SaveManifestEntry creates or replaces the manifest entry keyed by
// DomainName.
func (b *Backend) SaveManifestEntry(entry *types.ManifestEntry) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return err
	}
	if entry.DomainName == "" {
		return types.ErrDomainNotFound
	}

	entry.UpdatedAt = time.Now().UTC()

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO manifest_entries (`+manifestColumns+`) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(domain_name) DO UPDATE SET
		   brief_path = excluded.brief_path,
		   one_line_scope = excluded.one_line_scope,
		   content_hash_prefix = excluded.content_hash_prefix,
		   updated_at = excluded.updated_at`,
		entry.DomainName, entry.BriefPath, entry.OneLineScope,
		entry.ContentHashPrefix, formatTime(entry.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("persisting manifest entry: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing manifest entry: %w", err)
	}
	return nil
}

// GetManifestEntry returns the manifest entry for domain.
func (b *Backend) GetManifestEntry(domain string) (*types.ManifestEntry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	row := b.db.QueryRow("SELECT "+manifestColumns+" FROM manifest_entries WHERE domain_name = ?", domain)
	entry, err := hydrateManifestEntry(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrDomainNotFound
		}
		return nil, fmt.Errorf("getting manifest entry %s: %w", domain, err)
	}
	return entry, nil
}

// ListManifestEntries returns all manifest entries ordered by domain name.
func (b *Backend) ListManifestEntries() ([]*types.ManifestEntry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query("SELECT " + manifestColumns + " FROM manifest_entries ORDER BY domain_name ASC")
	if err != nil {
		return nil, fmt.Errorf("listing manifest entries: %w", err)
	}
	defer rows.Close()

	results := []*types.ManifestEntry{}
	for rows.Next() {
		entry, err := hydrateManifestEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating manifest entry: %w", err)
		}
		results = append(results, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating manifest entries: %w", err)
	}
	return results, nil
}

// DeleteManifestEntry removes the manifest entry for domain.
func (b *Backend) DeleteManifestEntry(domain string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return err
	}

	res, err := b.db.Exec("DELETE FROM manifest_entries WHERE domain_name = ?", domain)
	if err != nil {
		return fmt.Errorf("deleting manifest entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting manifest entry: %w", err)
	}
	if n == 0 {
		return types.ErrDomainNotFound
	}
	return nil
}

// hydrateManifestEntry converts a scanned row into a *types.ManifestEntry.
func hydrateManifestEntry(scan func(dest ...any) error) (*types.ManifestEntry, error) {
	var entry types.ManifestEntry
	var updatedAt string
	if err := scan(&entry.DomainName, &entry.BriefPath, &entry.OneLineScope,
		&entry.ContentHashPrefix, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if entry.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &entry, nil
}
