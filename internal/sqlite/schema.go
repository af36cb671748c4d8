// Package sqlite implements the SQLite backend for the Strata store.
// Implements: prd002-sqlite-backend (R3 schema, R11 Store interface);
//
//	docs/ARCHITECTURE § SQLite Backend.
package sqlite

// Schema DDL for all tables (prd002-sqlite-backend R3.2). Timestamps are
// RFC 3339 UTC strings; keyword and reference lists are JSON arrays.
const (
	createArtifacts = `CREATE TABLE IF NOT EXISTS artifacts (
    artifact_id TEXT PRIMARY KEY,
    path TEXT NOT NULL UNIQUE,
    content TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    byte_size INTEGER NOT NULL,
    tier TEXT NOT NULL,
    archetype TEXT NOT NULL,
    created_at TEXT NOT NULL,
    modified_at TEXT NOT NULL
);`

	createLifecycleStates = `CREATE TABLE IF NOT EXISTS lifecycle_states (
    path TEXT PRIMARY KEY,
    archetype TEXT NOT NULL,
    state_json TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (path) REFERENCES artifacts(path)
);`

	createBriefs = `CREATE TABLE IF NOT EXISTS briefs (
    domain_name TEXT PRIMARY KEY,
    artifact_path TEXT NOT NULL,
    token_count INTEGER NOT NULL,
    keywords_json TEXT NOT NULL,
    reference_paths_json TEXT NOT NULL,
    over_budget INTEGER NOT NULL DEFAULT 0,
    updated_at TEXT NOT NULL
);`

	createManifestEntries = `CREATE TABLE IF NOT EXISTS manifest_entries (
    domain_name TEXT PRIMARY KEY,
    brief_path TEXT NOT NULL,
    one_line_scope TEXT NOT NULL,
    content_hash_prefix TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`
)

// schemaStatements lists the DDL applied on Attach, in dependency order.
var schemaStatements = []string{
	createArtifacts,
	createLifecycleStates,
	createBriefs,
	createManifestEntries,
}
