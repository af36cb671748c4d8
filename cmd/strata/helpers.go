// Shared helpers for strata CLI commands.
// Implements: prd009-cli (R3 store attach, R7 exit codes, R8 output modes).
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/strata/internal/sqlite"
	"github.com/mesh-intelligence/strata/pkg/engine"
	"github.com/mesh-intelligence/strata/pkg/types"
)

// attachStore resolves the data directory and budgets, creates a SQLite
// backend, and attaches it. The caller must defer store.Detach().
func attachStore() (*sqlite.Backend, types.Budgets, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, types.Budgets{}, fmt.Errorf("resolve data dir: %w", err)
	}
	budgets, err := loadBudgets()
	if err != nil {
		return nil, types.Budgets{}, err
	}

	store := sqlite.NewBackend()
	err = store.Attach(types.Config{
		Backend: cfg.GetString(cfgKeyBackend),
		DataDir: dataDir,
		Budgets: budgets,
	})
	if err != nil {
		return nil, types.Budgets{}, fmt.Errorf("attach store: %w", err)
	}
	return store, budgets, nil
}

// newEngine builds the retrieval engine over store with the configured
// manifest path and a freshly built search index.
func newEngine(store types.Store) (*engine.Engine, error) {
	e := engine.New(store, cfg.GetString(cfgKeyManifestPath))
	if _, err := e.Reindex(); err != nil {
		return nil, err
	}
	return e, nil
}

// newManifestIndex builds the manifest renderer with the configured
// constraints and search index pointer.
func newManifestIndex(store types.Store, budgets types.Budgets) *engine.ManifestIndex {
	return engine.NewManifestIndex(store, budgets,
		cfg.GetStringSlice(cfgKeyConstraints),
		cfg.GetString(cfgKeySearchIndexPath))
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// readContent returns artifact content from the --file flag when set,
// otherwise the --content flag value.
func readContent(file, content string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read content file: %w", err)
		}
		return string(data), nil
	}
	return content, nil
}

// userErrors lists error kinds caused by caller input rather than the
// system; they map to exit code 1.
var userErrors = []error{
	types.ErrNotFound,
	types.ErrDuplicatePath,
	types.ErrDomainNotFound,
	types.ErrDuplicateDomain,
	types.ErrArtifactReferenced,
	types.ErrInvalidPath,
	types.ErrInvalidTier,
	types.ErrInvalidArchetype,
	types.ErrInvalidTransition,
	types.ErrInvalidState,
	types.ErrArchetypeMismatch,
	types.ErrNotConsolidatable,
	types.ErrSupersedesRequired,
	types.ErrBudgetExceeded,
	types.ErrBriefBelowMinimum,
}

// exitCode maps an error to the CLI exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	for _, sentinel := range userErrors {
		if errors.Is(err, sentinel) {
			return exitUserError
		}
	}
	return exitSysError
}
