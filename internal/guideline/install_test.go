package guideline_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/promptsmith/guidectl/internal/guideline"
)

func TestCreateWritesTextVerbatim(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "CLAUDE.md")
	doc := guideline.NewDocument("builtin:", "# Guidelines\nBe careful.\n")

	if err := guideline.Install(doc, target, guideline.ModeCreate, false); err != nil {
		t.Fatalf("install: %v", err)
	}
	b, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != doc.Text {
		t.Fatalf("content mismatch: got %q", b)
	}
}

func TestCreateRefusesNonEmptyTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "CLAUDE.md")
	if err := os.WriteFile(target, []byte("# My Rules\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc := guideline.NewDocument("builtin:", "# Guidelines\n")

	err := guideline.Install(doc, target, guideline.ModeCreate, false)
	var exists *guideline.TargetExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("expected *TargetExistsError, got %v", err)
	}
	// Target must be untouched.
	b, _ := os.ReadFile(target)
	if string(b) != "# My Rules\n" {
		t.Fatalf("target was modified: %q", b)
	}
}

func TestCreateAllowsEmptyExistingTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "CLAUDE.md")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	doc := guideline.NewDocument("builtin:", "# Guidelines\n")
	if err := guideline.Install(doc, target, guideline.ModeCreate, false); err != nil {
		t.Fatalf("install over empty file: %v", err)
	}
}

func TestCreateOverwriteIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "CLAUDE.md")
	doc := guideline.NewDocument("builtin:", "# Guidelines\n")

	if err := guideline.Install(doc, target, guideline.ModeCreate, true); err != nil {
		t.Fatalf("first install: %v", err)
	}
	if err := guideline.Install(doc, target, guideline.ModeCreate, true); err != nil {
		t.Fatalf("second install: %v", err)
	}
	b, _ := os.ReadFile(target)
	if string(b) != doc.Text {
		t.Fatalf("content mismatch after repeat install: %q", b)
	}
}

func TestAppendAfterExistingContent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "CLAUDE.md")
	if err := os.WriteFile(target, []byte("# My Rules\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc := guideline.NewDocument("builtin:", "# Guidelines\n")

	if err := guideline.Install(doc, target, guideline.ModeAppend, false); err != nil {
		t.Fatalf("append: %v", err)
	}
	b, _ := os.ReadFile(target)
	if string(b) != "# My Rules\n\n# Guidelines\n" {
		t.Fatalf("unexpected appended content: %q", b)
	}
}

func TestAppendToMissingTargetWritesTextOnly(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "CLAUDE.md")
	doc := guideline.NewDocument("builtin:", "# Guidelines\n")

	if err := guideline.Install(doc, target, guideline.ModeAppend, false); err != nil {
		t.Fatalf("append: %v", err)
	}
	b, _ := os.ReadFile(target)
	if string(b) != doc.Text {
		t.Fatalf("unexpected content: %q", b)
	}
}

func TestInstallMissingParentDirLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nope", "CLAUDE.md")
	doc := guideline.NewDocument("builtin:", "# Guidelines\n")

	if err := guideline.Install(doc, target, guideline.ModeCreate, false); err == nil {
		t.Fatalf("expected error for missing parent dir")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no partial files, found %d entries", len(entries))
	}
}

func TestCompareStates(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "CLAUDE.md")
	doc := guideline.NewDocument("builtin:", "# Guidelines\n")

	state, err := guideline.Compare(target, doc)
	if err != nil {
		t.Fatalf("compare missing: %v", err)
	}
	if state != guideline.StateMissing {
		t.Fatalf("expected missing, got %s", state)
	}

	if err := guideline.Install(doc, target, guideline.ModeCreate, false); err != nil {
		t.Fatal(err)
	}
	state, err = guideline.Compare(target, doc)
	if err != nil {
		t.Fatalf("compare installed: %v", err)
	}
	if state != guideline.StateUpToDate {
		t.Fatalf("expected up-to-date, got %s", state)
	}

	if err := os.WriteFile(target, []byte("# Edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	state, err = guideline.Compare(target, doc)
	if err != nil {
		t.Fatalf("compare edited: %v", err)
	}
	if state != guideline.StateModified {
		t.Fatalf("expected modified, got %s", state)
	}
}
