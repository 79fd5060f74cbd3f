// Package binding adapts typed identifiers to data-binding and validation
// models: a Field validates any inbound representation of an identifier
// and serializes outbound values to canonical text, so model layers never
// touch the parsing rules directly.
package binding

import (
	"fmt"

	"github.com/arthur-debert/typeduuid/typeduuid"
)

// Field describes one identifier-valued field of a model, bound to a kind.
type Field struct {
	kind        *typeduuid.Kind
	description string
}

// NewField returns a field bound to kind.
func NewField(kind *typeduuid.Kind) Field {
	return Field{kind: kind}
}

// WithDescription attaches human-readable documentation, surfaced by
// schema generators.
func (f Field) WithDescription(d string) Field {
	f.description = d
	return f
}

// Kind returns the bound kind.
func (f Field) Kind() *typeduuid.Kind { return f.kind }

// Description returns the field documentation, or the kind's display name
// when none was set.
func (f Field) Description() string {
	if f.description != "" {
		return f.description
	}
	return fmt.Sprintf("%s identifier", f.kind.Name())
}

// Validate accepts any supported representation (canonical or short text,
// plain UUID text, uuid.UUID, or an ID of the bound kind) and returns the
// validated identifier. An already-valid ID of the same kind passes
// through unchanged.
func (f Field) Validate(v any) (typeduuid.ID, error) {
	return f.kind.Validate(v)
}

// Serialize returns the canonical text used in structured output.
func (f Field) Serialize(id typeduuid.ID) (string, error) {
	if _, err := f.kind.Validate(id); err != nil {
		return "", err
	}
	return id.String(), nil
}

// Pattern returns the anchored regular expression for the field's
// canonical form, for inclusion in generated schemas.
func (f Field) Pattern() string {
	return f.kind.Pattern()
}
