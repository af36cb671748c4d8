// Tests for brief table operations: upsert semantics, JSON list
// round-trip, domain key errors.
package sqlite

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mesh-intelligence/strata/pkg/types"
)

// registerBriefArtifact registers the tier-1 artifact a brief points at.
func registerBriefArtifact(t *testing.T, b *Backend, path string) {
	t.Helper()
	if _, err := b.RegisterArtifact(path, "brief body", types.TierBrief, types.ArchetypeLivingDocument); err != nil {
		t.Fatalf("RegisterArtifact %s failed: %v", path, err)
	}
}

func TestSaveBriefRoundTrip(t *testing.T) {
	b := newAttachedBackend(t)
	registerBriefArtifact(t, b, "briefs/auth.md")

	brief := &types.DomainBrief{
		DomainName:     "auth",
		ArtifactPath:   "briefs/auth.md",
		TokenCount:     420,
		Keywords:       []string{"authentication", "oauth2", "jwt"},
		ReferencePaths: []string{"refs/oauth.md", "refs/sessions.md"},
	}
	if err := b.SaveBrief(brief); err != nil {
		t.Fatalf("SaveBrief failed: %v", err)
	}
	if brief.UpdatedAt.IsZero() {
		t.Error("SaveBrief should stamp UpdatedAt")
	}

	got, err := b.GetBrief("auth")
	if err != nil {
		t.Fatalf("GetBrief failed: %v", err)
	}
	if got.TokenCount != 420 {
		t.Errorf("TokenCount = %d", got.TokenCount)
	}
	if !reflect.DeepEqual(got.Keywords, brief.Keywords) {
		t.Errorf("Keywords = %v", got.Keywords)
	}
	if !reflect.DeepEqual(got.ReferencePaths, brief.ReferencePaths) {
		t.Errorf("ReferencePaths = %v", got.ReferencePaths)
	}
}

func TestSaveBriefUpsert(t *testing.T) {
	b := newAttachedBackend(t)
	registerBriefArtifact(t, b, "briefs/auth.md")

	first := &types.DomainBrief{DomainName: "auth", ArtifactPath: "briefs/auth.md", TokenCount: 400}
	if err := b.SaveBrief(first); err != nil {
		t.Fatalf("SaveBrief failed: %v", err)
	}
	second := &types.DomainBrief{
		DomainName:   "auth",
		ArtifactPath: "briefs/auth.md",
		TokenCount:   900,
		OverBudget:   true,
	}
	if err := b.SaveBrief(second); err != nil {
		t.Fatalf("SaveBrief (replace) failed: %v", err)
	}

	got, err := b.GetBrief("auth")
	if err != nil {
		t.Fatalf("GetBrief failed: %v", err)
	}
	if got.TokenCount != 900 || !got.OverBudget {
		t.Errorf("upsert should replace: %+v", got)
	}

	briefs, err := b.ListBriefs()
	if err != nil {
		t.Fatalf("ListBriefs failed: %v", err)
	}
	if len(briefs) != 1 {
		t.Errorf("upsert should not duplicate rows, got %d", len(briefs))
	}
}

func TestSaveBriefUnregisteredArtifact(t *testing.T) {
	b := newAttachedBackend(t)

	err := b.SaveBrief(&types.DomainBrief{DomainName: "auth", ArtifactPath: "briefs/missing.md"})
	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("want ErrNotFound for unregistered artifact, got %v", err)
	}
}

func TestGetBriefDomainNotFound(t *testing.T) {
	b := newAttachedBackend(t)

	if _, err := b.GetBrief("payments"); !errors.Is(err, types.ErrDomainNotFound) {
		t.Errorf("want ErrDomainNotFound, got %v", err)
	}
}

func TestListBriefsOrdered(t *testing.T) {
	b := newAttachedBackend(t)
	for _, domain := range []string{"payments", "auth", "search"} {
		path := "briefs/" + domain + ".md"
		registerBriefArtifact(t, b, path)
		if err := b.SaveBrief(&types.DomainBrief{DomainName: domain, ArtifactPath: path}); err != nil {
			t.Fatalf("SaveBrief %s failed: %v", domain, err)
		}
	}

	briefs, err := b.ListBriefs()
	if err != nil {
		t.Fatalf("ListBriefs failed: %v", err)
	}
	var order []string
	for _, brief := range briefs {
		order = append(order, brief.DomainName)
	}
	want := []string{"auth", "payments", "search"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("want %v, got %v", want, order)
	}
}

func TestDeleteBrief(t *testing.T) {
	b := newAttachedBackend(t)
	registerBriefArtifact(t, b, "briefs/auth.md")
	if err := b.SaveBrief(&types.DomainBrief{DomainName: "auth", ArtifactPath: "briefs/auth.md"}); err != nil {
		t.Fatalf("SaveBrief failed: %v", err)
	}

	if err := b.DeleteBrief("auth"); err != nil {
		t.Fatalf("DeleteBrief failed: %v", err)
	}
	if err := b.DeleteBrief("auth"); !errors.Is(err, types.ErrDomainNotFound) {
		t.Errorf("second delete should return ErrDomainNotFound, got %v", err)
	}
}
