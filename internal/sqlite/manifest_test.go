// Tests for manifest entry table operations.
package sqlite

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mesh-intelligence/strata/pkg/types"
)

func TestSaveManifestEntryRoundTrip(t *testing.T) {
	b := newAttachedBackend(t)

	entry := &types.ManifestEntry{
		DomainName:        "auth",
		BriefPath:         "briefs/auth.md",
		OneLineScope:      "authentication and session handling",
		ContentHashPrefix: "2cf24dba",
	}
	if err := b.SaveManifestEntry(entry); err != nil {
		t.Fatalf("SaveManifestEntry failed: %v", err)
	}
	if entry.UpdatedAt.IsZero() {
		t.Error("SaveManifestEntry should stamp UpdatedAt")
	}

	got, err := b.GetManifestEntry("auth")
	if err != nil {
		t.Fatalf("GetManifestEntry failed: %v", err)
	}
	if got.BriefPath != entry.BriefPath || got.OneLineScope != entry.OneLineScope ||
		got.ContentHashPrefix != entry.ContentHashPrefix {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestSaveManifestEntryUpsert(t *testing.T) {
	b := newAttachedBackend(t)

	if err := b.SaveManifestEntry(&types.ManifestEntry{DomainName: "auth", OneLineScope: "v1"}); err != nil {
		t.Fatalf("SaveManifestEntry failed: %v", err)
	}
	if err := b.SaveManifestEntry(&types.ManifestEntry{DomainName: "auth", OneLineScope: "v2"}); err != nil {
		t.Fatalf("SaveManifestEntry (replace) failed: %v", err)
	}

	got, err := b.GetManifestEntry("auth")
	if err != nil {
		t.Fatalf("GetManifestEntry failed: %v", err)
	}
	if got.OneLineScope != "v2" {
		t.Errorf("upsert should replace, got %q", got.OneLineScope)
	}

	entries, err := b.ListManifestEntries()
	if err != nil {
		t.Fatalf("ListManifestEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("upsert should not duplicate rows, got %d", len(entries))
	}
}

func TestSaveManifestEntryEmptyDomain(t *testing.T) {
	b := newAttachedBackend(t)

	err := b.SaveManifestEntry(&types.ManifestEntry{BriefPath: "briefs/x.md"})
	if !errors.Is(err, types.ErrDomainNotFound) {
		t.Errorf("want ErrDomainNotFound, got %v", err)
	}
}

func TestListManifestEntriesOrdered(t *testing.T) {
	b := newAttachedBackend(t)
	for _, domain := range []string{"search", "auth", "payments"} {
		if err := b.SaveManifestEntry(&types.ManifestEntry{DomainName: domain}); err != nil {
			t.Fatalf("SaveManifestEntry %s failed: %v", domain, err)
		}
	}

	entries, err := b.ListManifestEntries()
	if err != nil {
		t.Fatalf("ListManifestEntries failed: %v", err)
	}
	var order []string
	for _, e := range entries {
		order = append(order, e.DomainName)
	}
	want := []string{"auth", "payments", "search"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("want %v, got %v", want, order)
	}
}

func TestDeleteManifestEntry(t *testing.T) {
	b := newAttachedBackend(t)
	if err := b.SaveManifestEntry(&types.ManifestEntry{DomainName: "auth"}); err != nil {
		t.Fatalf("SaveManifestEntry failed: %v", err)
	}

	if err := b.DeleteManifestEntry("auth"); err != nil {
		t.Fatalf("DeleteManifestEntry failed: %v", err)
	}
	if err := b.DeleteManifestEntry("auth"); !errors.Is(err, types.ErrDomainNotFound) {
		t.Errorf("second delete should return ErrDomainNotFound, got %v", err)
	}
}
