// Package sqlite provides the public API for the SQLite Store backend.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
//
// Implements: prd001-store-core R2 (backend factory);
//
//	docs/ARCHITECTURE § Public API.
package sqlite

import (
	"github.com/mesh-intelligence/strata/internal/sqlite"
	"github.com/mesh-intelligence/strata/pkg/types"
)

// NewStore creates a new SQLite store instance. The store is not attached;
// call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".strata-db",
//	})
//	defer store.Detach()
func NewStore() types.Store {
	return sqlite.NewBackend()
}
