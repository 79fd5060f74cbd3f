// Package httpparam adapts typed identifiers to net/http routing: a Param
// describes a path parameter holding an identifier of one kind, with
// optional documentation metadata, and extracts validated values from
// requests routed through Go 1.22 pattern muxes.
package httpparam

import (
	"fmt"
	"net/http"

	"github.com/arthur-debert/typeduuid/typeduuid"
)

// Param describes one identifier-valued path parameter.
type Param struct {
	kind        *typeduuid.Kind
	name        string
	description string
}

// New returns a descriptor for a path parameter named name (the wildcard
// name in the route pattern, e.g. "id" for "/users/{id}") holding
// identifiers of kind.
func New(kind *typeduuid.Kind, name string) Param {
	return Param{kind: kind, name: name}
}

// WithDescription attaches human-readable documentation for API docs.
func (p Param) WithDescription(d string) Param {
	p.description = d
	return p
}

// Kind returns the parameter's kind.
func (p Param) Kind() *typeduuid.Kind { return p.kind }

// Name returns the wildcard name.
func (p Param) Name() string { return p.name }

// Description returns the documentation string, defaulting to one derived
// from the kind.
func (p Param) Description() string {
	if p.description != "" {
		return p.description
	}
	return fmt.Sprintf("%s identifier in canonical or short form", p.kind.Name())
}

// Pattern returns the anchored regular expression for the parameter's
// canonical form, for route documentation and validation layers.
func (p Param) Pattern() string {
	return p.kind.Pattern()
}

// FromRequest extracts and validates the parameter from a request routed
// with a "{name}" wildcard. Both canonical and short forms are accepted.
// Failures carry the package's typed errors so handlers can map them to
// status codes (ErrTypeTagMismatch and malformed input usually to 404 or
// 422).
func (p Param) FromRequest(r *http.Request) (typeduuid.ID, error) {
	raw := r.PathValue(p.name)
	if raw == "" {
		return typeduuid.ID{}, fmt.Errorf("%w: missing path parameter %q", typeduuid.ErrInvalidUUIDFormat, p.name)
	}
	return p.kind.Parse(raw)
}
