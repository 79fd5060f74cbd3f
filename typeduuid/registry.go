package typeduuid

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/typeduuid/internal/validation"
)

// Registry is a concurrency-safe mapping from type tag to Kind. A tag maps
// to exactly one Kind for the registry's lifetime: registering an already
// known tag returns the existing descriptor, and Lookup returns the same
// pointer on every call, so callers may compare kinds by identity.
//
// The zero value is not usable; call NewRegistry.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]*Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]*Kind)}
}

// Register validates tag and returns the Kind for it, creating the
// descriptor if the normalized tag is not yet known. Registration is
// idempotent: concurrent calls for the same new tag all receive the one
// descriptor that won the insert.
func (r *Registry) Register(name, tag string) (*Kind, error) {
	if err := validation.ValidateTypeTag(tag); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTypeTag, err)
	}
	normalized := validation.NormalizeTypeTag(tag)

	r.mu.Lock()
	defer r.mu.Unlock()

	if k, ok := r.kinds[normalized]; ok {
		return k, nil
	}
	k := &Kind{name: name, tag: normalized, registry: r}
	r.kinds[normalized] = k
	return k, nil
}

// MustRegister is like Register but panics on an invalid tag. It is
// intended for package-level kind variables.
func (r *Registry) MustRegister(name, tag string) *Kind {
	k, err := r.Register(name, tag)
	if err != nil {
		panic(err)
	}
	return k
}

// Lookup returns the Kind registered for tag. The lookup is
// case-insensitive and never fails; unknown tags report ok=false.
func (r *Registry) Lookup(tag string) (*Kind, bool) {
	normalized := validation.NormalizeTypeTag(tag)

	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.kinds[normalized]
	return k, ok
}

// Tags returns a sorted snapshot of the registered tags.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	tags := make([]string, 0, len(r.kinds))
	for tag := range r.kinds {
		tags = append(tags, tag)
	}
	r.mu.RUnlock()

	sort.Strings(tags)
	return tags
}

// Kinds returns a snapshot of the registered kinds, sorted by tag.
func (r *Registry) Kinds() []*Kind {
	r.mu.RLock()
	kinds := make([]*Kind, 0, len(r.kinds))
	for _, k := range r.kinds {
		kinds = append(kinds, k)
	}
	r.mu.RUnlock()

	sort.Slice(kinds, func(i, j int) bool { return kinds[i].tag < kinds[j].tag })
	return kinds
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.kinds)
}

// Reset removes all entries. It exists for test isolation, not for normal
// operation: previously issued Kind pointers stay usable as value carriers
// but are no longer discoverable via Lookup, and re-registering their tag
// mints a fresh descriptor.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = make(map[string]*Kind)
}

// defaultRegistry backs the package-level functions. Libraries that need
// isolation can carry their own *Registry instead.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the
// package-level functions.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register registers a kind in the default registry.
func Register(name, tag string) (*Kind, error) { return defaultRegistry.Register(name, tag) }

// MustRegister registers a kind in the default registry, panicking on an
// invalid tag.
func MustRegister(name, tag string) *Kind { return defaultRegistry.MustRegister(name, tag) }

// Lookup finds a kind by tag in the default registry.
func Lookup(tag string) (*Kind, bool) { return defaultRegistry.Lookup(tag) }

// Tags lists the tags registered in the default registry.
func Tags() []string { return defaultRegistry.Tags() }

// Reset clears the default registry. Test isolation only.
func Reset() { defaultRegistry.Reset() }
