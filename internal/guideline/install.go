package guideline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/promptsmith/guidectl/internal/utils"
)

// Mode selects how the guideline text is delivered to the target file.
type Mode string

const (
	// ModeCreate writes the text as the full contents of the target.
	ModeCreate Mode = "create"
	// ModeAppend appends the text after the target's existing contents,
	// separated by a blank line.
	ModeAppend Mode = "append"
)

// TargetExistsError indicates a create would clobber existing content.
type TargetExistsError struct {
	Path string
}

func (e *TargetExistsError) Error() string {
	return fmt.Sprintf("target %s already has content (use --force to overwrite)", e.Path)
}

// Install writes doc's text into targetPath according to mode.
// The fetch has already completed by the time Install runs, and all writes
// are atomic, so a failure leaves the target untouched.
func Install(doc *Document, targetPath string, mode Mode, overwrite bool) error {
	if doc == nil {
		return errors.New("document is nil")
	}
	switch mode {
	case ModeCreate:
		return create(doc, targetPath, overwrite)
	case ModeAppend:
		return appendTo(doc, targetPath)
	default:
		return fmt.Errorf("unknown install mode: %s", mode)
	}
}

func create(doc *Document, targetPath string, overwrite bool) error {
	info, err := os.Stat(targetPath)
	switch {
	case err == nil:
		// An existing empty file is fine to fill in.
		if info.Size() > 0 && !overwrite {
			return &TargetExistsError{Path: targetPath}
		}
	case errors.Is(err, fs.ErrNotExist):
		// fresh target
	default:
		return fmt.Errorf("stat target: %w", err)
	}
	if err := utils.SafeWriteFile(targetPath, []byte(doc.Text)); err != nil {
		return fmt.Errorf("write target: %w", err)
	}
	return nil
}

func appendTo(doc *Document, targetPath string) error {
	old, err := os.ReadFile(targetPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read target: %w", err)
	}
	var combined []byte
	if len(old) > 0 {
		combined = make([]byte, 0, len(old)+1+len(doc.Text))
		combined = append(combined, old...)
		combined = append(combined, '\n')
		combined = append(combined, doc.Text...)
	} else {
		combined = []byte(doc.Text)
	}
	if err := utils.SafeWriteFile(targetPath, combined); err != nil {
		return fmt.Errorf("write target: %w", err)
	}
	return nil
}

// State describes how an installed target compares to the canonical text.
type State string

const (
	StateUpToDate State = "up-to-date"
	StateModified State = "modified"
	StateMissing  State = "missing"
)

// Compare reads targetPath and reports whether its contents match doc.
func Compare(targetPath string, doc *Document) (State, error) {
	b, err := os.ReadFile(targetPath)
	if errors.Is(err, fs.ErrNotExist) {
		return StateMissing, nil
	}
	if err != nil {
		return "", fmt.Errorf("read target: %w", err)
	}
	if ChecksumOf(string(b)) == doc.Checksum {
		return StateUpToDate, nil
	}
	return StateModified, nil
}
