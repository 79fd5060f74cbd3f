package typeduuid

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/typeduuid/internal/validation"
	"github.com/google/uuid"
)

// Kind is the immutable descriptor for one identifier kind: a display name
// plus the type tag embedded in every identifier of that kind. Kinds are
// created only through a Registry, which guarantees one descriptor per tag,
// so two kinds are the same kind exactly when they are the same pointer.
type Kind struct {
	name     string
	tag      string
	registry *Registry
}

// Name returns the kind's display name, with its original casing.
func (k *Kind) Name() string { return k.name }

// Tag returns the kind's normalized (lowercase) type tag.
func (k *Kind) Tag() string { return k.tag }

// Registry returns the registry that issued this kind.
func (k *Kind) Registry() *Registry { return k.registry }

func (k *Kind) String() string {
	return fmt.Sprintf("%s(%s)", k.name, k.tag)
}

// New generates an identifier of this kind with a fresh random (version 4)
// UUID. It panics only if the platform's cryptographic randomness source
// fails, matching uuid.New.
func (k *Kind) New() ID {
	return ID{tag: k.tag, id: uuid.New()}
}

// NewID is like New but reports randomness-source failures instead of
// panicking.
func (k *Kind) NewID() (ID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return ID{}, fmt.Errorf("%w: generating uuid: %v", Err, err)
	}
	return ID{tag: k.tag, id: u}, nil
}

// FromUUID wraps an existing UUID value in an identifier of this kind.
func (k *Kind) FromUUID(u uuid.UUID) ID {
	return ID{tag: k.tag, id: u}
}

// FromString parses canonical "tag-uuid" text or a plain hyphenated UUID
// (the kind's tag is attached implicitly). Canonical text carrying a
// different tag fails with ErrTypeTagMismatch; malformed UUID text fails
// with ErrInvalidUUIDFormat.
func (k *Kind) FromString(s string) (ID, error) {
	if s == "" {
		return ID{}, fmt.Errorf("%w: empty input", ErrInvalidUUIDFormat)
	}

	// Plain UUID first: its first hyphen-delimited segment is 8 hex digits,
	// which would otherwise pass for a type tag.
	if validation.ValidateUUIDText(s) == nil {
		return k.fromUUIDText(s)
	}

	i := strings.IndexByte(s, '-')
	if i <= 0 {
		return ID{}, fmt.Errorf("%w: %q is not a typed or plain uuid", ErrInvalidUUIDFormat, s)
	}
	tag, rest := s[:i], s[i+1:]
	if err := validation.ValidateUUIDText(rest); err != nil {
		return ID{}, fmt.Errorf("%w: %v", ErrInvalidUUIDFormat, err)
	}
	if !strings.EqualFold(tag, k.tag) {
		return ID{}, fmt.Errorf("%w: expected %q, got %q", ErrTypeTagMismatch, k.tag, strings.ToLower(tag))
	}
	return k.fromUUIDText(rest)
}

// FromShort parses short "tag_base62" text produced by ID.Short. A foreign
// tag fails with ErrTypeTagMismatch; a payload outside the base62 alphabet
// fails with ErrInvalidUUIDFormat wrapping ErrMalformedShortEncoding.
func (k *Kind) FromShort(s string) (ID, error) {
	i := strings.IndexByte(s, '_')
	if i <= 0 {
		return ID{}, fmt.Errorf("%w: %q is not a short-form identifier", ErrInvalidUUIDFormat, s)
	}
	tag, payload := s[:i], s[i+1:]
	if !strings.EqualFold(tag, k.tag) {
		return ID{}, fmt.Errorf("%w: expected %q, got %q", ErrTypeTagMismatch, k.tag, strings.ToLower(tag))
	}

	hi, lo, err := decodeBase62(payload)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %w", ErrInvalidUUIDFormat, err)
	}
	// Base62 drops leading zero bytes of small values; rebuilding from the
	// two fixed-width halves restores them.
	return ID{tag: k.tag, id: uuidFromUint128(hi, lo)}, nil
}

// Parse parses any of the text forms this kind accepts: canonical, plain
// UUID, or short. The branch is chosen by separator, not by trial and
// error: input containing an underscore before any hyphen is short form.
func (k *Kind) Parse(s string) (ID, error) {
	u := strings.IndexByte(s, '_')
	h := strings.IndexByte(s, '-')
	if u >= 0 && (h < 0 || u < h) {
		return k.FromShort(s)
	}
	return k.FromString(s)
}

// MustParse is like Parse but panics on error, for identifiers known to be
// well formed.
func (k *Kind) MustParse(s string) ID {
	id, err := k.Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Validate accepts any supported representation of an identifier of this
// kind and returns the validated value: an ID of the same kind passes
// through unchanged, a uuid.UUID is wrapped, and a string is parsed like
// Parse. Anything else fails.
func (k *Kind) Validate(v any) (ID, error) {
	switch x := v.(type) {
	case ID:
		if x.tag != k.tag {
			return ID{}, fmt.Errorf("%w: expected %q, got %q", ErrTypeTagMismatch, k.tag, x.tag)
		}
		return x, nil
	case uuid.UUID:
		return k.FromUUID(x), nil
	case string:
		return k.Parse(x)
	default:
		return ID{}, fmt.Errorf("%w: cannot build identifier from %T", Err, v)
	}
}

// Pattern returns an anchored regular expression matching this kind's
// canonical text form. Matching is intended to be case-insensitive.
func (k *Kind) Pattern() string {
	return "^" + k.tag + "-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$"
}

func (k *Kind) fromUUIDText(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %v", ErrInvalidUUIDFormat, err)
	}
	return ID{tag: k.tag, id: u}, nil
}
