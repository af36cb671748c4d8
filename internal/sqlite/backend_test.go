// Tests for SQLite backend attach/detach lifecycle.
// Implements: prd002-sqlite-backend acceptance criteria (unit tests).
package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/strata/pkg/types"
)

// newAttachedBackend attaches a backend to a fresh temp dir and registers
// cleanup. Shared by the table tests.
func newAttachedBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	if _, err := os.Stat(filepath.Join(tmpDir, DBFileName)); err != nil {
		t.Errorf("database file should exist after Attach: %v", err)
	}
}

func TestBackend_AttachTwice(t *testing.T) {
	b := newAttachedBackend(t)

	err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	if !errors.Is(err, types.ErrAlreadyAttached) {
		t.Errorf("second Attach should return ErrAlreadyAttached, got %v", err)
	}
}

func TestBackend_AttachInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  types.Config
		wantErr error
	}{
		{
			name:    "empty backend",
			config:  types.Config{DataDir: "x"},
			wantErr: types.ErrBackendEmpty,
		},
		{
			name:    "unknown backend",
			config:  types.Config{Backend: "dynamo", DataDir: "x"},
			wantErr: types.ErrBackendUnknown,
		},
		{
			name: "negative budget",
			config: types.Config{
				Backend: types.BackendSQLite,
				Budgets: types.Budgets{ManifestCeiling: -1},
			},
			wantErr: types.ErrBudgetNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBackend()
			err := b.Attach(tt.config)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Attach should return %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBackend_DetachIdempotent(t *testing.T) {
	b := newAttachedBackend(t)

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach should succeed, got %v", err)
	}
}

func TestBackend_OperationsAfterDetach(t *testing.T) {
	b := newAttachedBackend(t)
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	if _, err := b.RegisterArtifact("a.md", "x", types.TierReference, types.ArchetypeCumulative); !errors.Is(err, types.ErrStoreDetached) {
		t.Errorf("RegisterArtifact after Detach should return ErrStoreDetached, got %v", err)
	}
	if _, err := b.GetArtifact("a.md"); !errors.Is(err, types.ErrStoreDetached) {
		t.Errorf("GetArtifact after Detach should return ErrStoreDetached, got %v", err)
	}
	if _, err := b.ListBriefs(); !errors.Is(err, types.ErrStoreDetached) {
		t.Errorf("ListBriefs after Detach should return ErrStoreDetached, got %v", err)
	}
	if err := b.DeregisterArtifact("a.md"); !errors.Is(err, types.ErrStoreDetached) {
		t.Errorf("DeregisterArtifact after Detach should return ErrStoreDetached, got %v", err)
	}
}

func TestBackend_DataPersistsAcrossAttachCycles(t *testing.T) {
	tmpDir := t.TempDir()
	config := types.Config{Backend: types.BackendSQLite, DataDir: tmpDir}

	b := NewBackend()
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if _, err := b.RegisterArtifact("notes.md", "content", types.TierReference, types.ArchetypeCumulative); err != nil {
		t.Fatalf("RegisterArtifact failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	b2 := NewBackend()
	if err := b2.Attach(config); err != nil {
		t.Fatalf("re-Attach failed: %v", err)
	}
	defer b2.Detach()

	a, err := b2.GetArtifact("notes.md")
	if err != nil {
		t.Fatalf("GetArtifact after re-attach failed: %v", err)
	}
	if a.Content != "content" {
		t.Errorf("content should survive re-attach, got %q", a.Content)
	}
}
