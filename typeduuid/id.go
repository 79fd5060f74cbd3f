package typeduuid

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID is an immutable typed identifier: a 128-bit UUID paired with the type
// tag of the kind it belongs to. The zero value is not a valid identifier.
//
// ID is a comparable value type: two IDs are equal exactly when tag and
// UUID are equal, regardless of how each was constructed, so IDs work
// directly as map keys and with ==.
type ID struct {
	tag string
	id  uuid.UUID
}

// Tag returns the identifier's normalized type tag.
func (id ID) Tag() string { return id.tag }

// UUID returns the identifier's underlying UUID value.
func (id ID) UUID() uuid.UUID { return id.id }

// Kind resolves the identifier's tag through the default registry. ok is
// false when the tag is not (or no longer) registered there; identifiers
// issued from a private registry resolve through that registry's Lookup
// instead.
func (id ID) Kind() (*Kind, bool) {
	return defaultRegistry.Lookup(id.tag)
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool {
	return id.tag == "" && id.id == uuid.Nil
}

// String returns the canonical text form "tag-uuid", lowercase.
func (id ID) String() string {
	return id.tag + "-" + id.id.String()
}

// Short returns the compact text form "tag_base62", where the base62
// payload encodes the UUID as a 128-bit unsigned integer.
func (id ID) Short() string {
	hi, lo := uuidToUint128(id.id)
	return id.tag + "_" + encodeBase62(hi, lo)
}

// GoString returns a debug form that also names the identifier's kind when
// it is registered.
func (id ID) GoString() string {
	name := id.tag
	if k, ok := id.Kind(); ok {
		name = k.Name()
	}
	return fmt.Sprintf("typeduuid.ID[%s](%s)", name, id.String())
}

// Bytes returns the UTF-8 encoding of the canonical text form.
func (id ID) Bytes() []byte {
	return []byte(id.String())
}

// Compare orders identifiers totally: by tag lexicographically first, then
// by UUID as a 128-bit big-endian unsigned integer. Cross-tag ordering is
// defined so sorting a mixed slice never fails and groups each kind
// together.
func (id ID) Compare(other ID) int {
	if c := strings.Compare(id.tag, other.tag); c != 0 {
		return c
	}
	return bytes.Compare(id.id[:], other.id[:])
}

// Less reports whether id orders before other under Compare.
func (id ID) Less(other ID) bool {
	return id.Compare(other) < 0
}

// uuidToUint128 splits a UUID into big-endian high and low 64-bit halves.
func uuidToUint128(u uuid.UUID) (hi, lo uint64) {
	hi = binary.BigEndian.Uint64(u[:8])
	lo = binary.BigEndian.Uint64(u[8:])
	return hi, lo
}

// uuidFromUint128 rebuilds a UUID from its two halves, restoring the full
// 16-byte width regardless of leading zero bits.
func uuidFromUint128(hi, lo uint64) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], hi)
	binary.BigEndian.PutUint64(u[8:], lo)
	return u
}
