package guideline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/promptsmith/guidectl/internal/utils"
)

const manifestFileName = "manifest.json"

// Entry records one installed copy of the guideline document.
type Entry struct {
	ID          string    `json:"id"`
	Target      string    `json:"target"`
	SourceURI   string    `json:"source_uri"`
	Checksum    string    `json:"checksum"`
	InstalledAt time.Time `json:"installed_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Manifest tracks where the guideline has been installed, persisted as
// JSON in the state directory.
type Manifest struct {
	Entries map[string]*Entry `json:"entries"`

	// Not serialized: on-disk location of the manifest.json
	stateDir string `json:"-"`
}

// LoadManifest reads the manifest from dir, returning an empty manifest
// if none exists yet.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, manifestFileName)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Manifest{Entries: make(map[string]*Entry), stateDir: dir}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Entries == nil {
		m.Entries = make(map[string]*Entry)
	}
	m.stateDir = dir
	return &m, nil
}

// Save writes manifest.json using atomic write.
func (m *Manifest) Save() error {
	if m.stateDir == "" {
		return errors.New("manifest state directory not set")
	}
	if err := utils.EnsureDir(m.stateDir); err != nil {
		return fmt.Errorf("ensure state dir: %w", err)
	}
	data, err := utils.PrettyJSON(m)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(m.stateDir, manifestFileName), data)
}

// Record upserts an entry for the given install, keyed by absolute target path.
func (m *Manifest) Record(doc *Document, targetPath string) (*Entry, error) {
	abs, err := filepath.Abs(targetPath)
	if err != nil {
		return nil, fmt.Errorf("resolve target path: %w", err)
	}
	now := time.Now()
	if e, ok := m.Entries[abs]; ok {
		e.SourceURI = doc.SourceURI
		e.Checksum = doc.Checksum
		e.UpdatedAt = now
		return e, nil
	}
	e := &Entry{
		ID:          uuid.NewString(),
		Target:      abs,
		SourceURI:   doc.SourceURI,
		Checksum:    doc.Checksum,
		InstalledAt: now,
		UpdatedAt:   now,
	}
	m.Entries[abs] = e
	return e, nil
}

// Lookup returns the entry for targetPath, if recorded.
func (m *Manifest) Lookup(targetPath string) (*Entry, bool) {
	abs, err := filepath.Abs(targetPath)
	if err != nil {
		return nil, false
	}
	e, ok := m.Entries[abs]
	return e, ok
}

// Targets returns recorded target paths in deterministic order.
func (m *Manifest) Targets() []string {
	targets := make([]string, 0, len(m.Entries))
	for t := range m.Entries {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	return targets
}
