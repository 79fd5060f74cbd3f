package typeduuid

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/typeduuid/internal/validation"
)

// Parse parses an identifier in canonical or short form without a known
// target kind, resolving the embedded tag through the registry. The form
// is classified by separator position before any tag lookup: a hyphen
// after a plausible tag followed by UUID-shaped text means canonical, an
// underscore after a plausible tag means short. A well-formed input whose
// tag is not registered fails with ErrUnknownTypeTag; input matching
// neither form fails with ErrInvalidUUIDFormat.
func (r *Registry) Parse(s string) (ID, error) {
	if s == "" {
		return ID{}, fmt.Errorf("%w: empty input", ErrInvalidUUIDFormat)
	}

	if i := strings.IndexByte(s, '-'); i > 0 && i <= validation.MaxTagLength {
		tag, rest := s[:i], s[i+1:]
		if validation.ValidateTypeTag(tag) == nil && validation.ValidateUUIDText(rest) == nil {
			k, ok := r.Lookup(tag)
			if !ok {
				return ID{}, fmt.Errorf("%w: %q", ErrUnknownTypeTag, validation.NormalizeTypeTag(tag))
			}
			return k.FromString(s)
		}
	}

	if i := strings.IndexByte(s, '_'); i > 0 && i <= validation.MaxTagLength {
		tag := s[:i]
		if validation.ValidateTypeTag(tag) == nil {
			k, ok := r.Lookup(tag)
			if !ok {
				return ID{}, fmt.Errorf("%w: %q", ErrUnknownTypeTag, validation.NormalizeTypeTag(tag))
			}
			return k.FromShort(s)
		}
	}

	return ID{}, fmt.Errorf("%w: %q is neither canonical nor short form", ErrInvalidUUIDFormat, s)
}

// Parse parses canonical or short identifier text against the default
// registry.
func Parse(s string) (ID, error) {
	return defaultRegistry.Parse(s)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}
