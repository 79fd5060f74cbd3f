// Package manifest persists a registry's kind set as a YAML file so
// separate processes (CLI invocations, test harnesses) can share one set
// of registered kinds. The file holds only {name, tag} descriptors;
// loading re-registers them, which is idempotent.
package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/typeduuid/typeduuid"
	"gopkg.in/yaml.v3"
)

const (
	lockSuffix        = ".lock"
	lockRetryInterval = 50 * time.Millisecond
)

// Entry is one kind descriptor in a manifest file.
type Entry struct {
	Name string `yaml:"name"`
	Tag  string `yaml:"tag"`
}

// Document is the on-disk shape of a manifest.
type Document struct {
	Kinds []Entry `yaml:"kinds"`
}

// Manifest reads and writes one manifest file, serializing cross-process
// access through a lock file next to it.
type Manifest struct {
	path  string
	locks FileLockFactory
}

// New returns a manifest bound to path, using flock for cross-process
// locking.
func New(path string) *Manifest {
	return &Manifest{path: path, locks: &FlockFactory{}}
}

// NewWithLockFactory is like New with a caller-supplied lock factory,
// used by tests to substitute a mock lock.
func NewWithLockFactory(path string, locks FileLockFactory) *Manifest {
	return &Manifest{path: path, locks: locks}
}

// Path returns the manifest file path.
func (m *Manifest) Path() string { return m.path }

// Save writes the registry's current kind set to the manifest file. The
// write is atomic: content goes to a temp file in the same directory,
// then renames over the target.
func (m *Manifest) Save(ctx context.Context, reg *typeduuid.Registry) error {
	unlock, err := m.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	doc := Document{}
	for _, k := range reg.Kinds() {
		doc.Kinds = append(doc.Kinds, Entry{Name: k.Name(), Tag: k.Tag()})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	dir := filepath.Dir(m.path)
	tmp, err := os.CreateTemp(dir, ".manifest-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp manifest: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp manifest: %w", err)
	}
	if err := os.Rename(tmpPath, m.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace manifest: %w", err)
	}
	return nil
}

// Load reads the manifest and registers every entry into reg, returning
// the kinds in file order. Entries whose tag is already registered resolve
// to the existing kind; a malformed tag aborts the load.
func (m *Manifest) Load(ctx context.Context, reg *typeduuid.Registry) ([]*typeduuid.Kind, error) {
	unlock, err := m.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", m.path, err)
	}

	kinds := make([]*typeduuid.Kind, 0, len(doc.Kinds))
	for _, entry := range doc.Kinds {
		k, err := reg.Register(entry.Name, entry.Tag)
		if err != nil {
			return nil, fmt.Errorf("manifest entry %q: %w", entry.Name, err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func (m *Manifest) acquire(ctx context.Context) (func(), error) {
	lock := m.locks.New(m.path + lockSuffix)
	locked, err := lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to lock manifest %s: %w", m.path, err)
	}
	if !locked {
		return nil, fmt.Errorf("manifest %s is locked by another process", m.path)
	}
	return func() { _ = lock.Unlock() }, nil
}
