package guideline_test

import (
	"path/filepath"
	"testing"

	"github.com/promptsmith/guidectl/internal/guideline"
)

func TestManifestRecordAndRoundTrip(t *testing.T) {
	stateDir := t.TempDir()
	target := filepath.Join(t.TempDir(), "CLAUDE.md")
	doc := guideline.NewDocument("https://example.com/g.md", "# Guidelines\n")

	m, err := guideline.LoadManifest(stateDir)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	e, err := m.Record(doc, target)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("expected entry id")
	}
	if err := m.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	m2, err := guideline.LoadManifest(stateDir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, ok := m2.Lookup(target)
	if !ok {
		t.Fatalf("entry not found after reload")
	}
	if got.ID != e.ID {
		t.Fatalf("id changed across reload: %s vs %s", got.ID, e.ID)
	}
	if got.Checksum != doc.Checksum {
		t.Fatalf("checksum mismatch")
	}
}

func TestManifestRecordUpsertsKeepingID(t *testing.T) {
	stateDir := t.TempDir()
	target := filepath.Join(t.TempDir(), "CLAUDE.md")

	m, err := guideline.LoadManifest(stateDir)
	if err != nil {
		t.Fatal(err)
	}
	first, err := m.Record(guideline.NewDocument("builtin:", "v1"), target)
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.Record(guideline.NewDocument("builtin:", "v2"), target)
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected stable id on upsert")
	}
	if second.Checksum != guideline.ChecksumOf("v2") {
		t.Fatalf("checksum not updated on upsert")
	}
	if len(m.Targets()) != 1 {
		t.Fatalf("expected a single entry, got %d", len(m.Targets()))
	}
}
