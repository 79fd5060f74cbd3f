package typeduuid

import (
	"database/sql/driver"
	"fmt"

	"github.com/arthur-debert/typeduuid/internal/validation"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// The serialized text identity of an ID is always its canonical form.
// encoding/json and any other TextMarshaler-aware encoder pick these up,
// so IDs appear as plain strings in structured output. Unmarshaling is
// tag-agnostic and resolves the kind through the default registry.

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: cannot marshal zero identifier", Err)
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts canonical
// or short form and requires the embedded tag to be registered in the
// default registry.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the canonical string.
func (id ID) MarshalYAML() (interface{}, error) {
	return id.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}

// MarshalBinary implements encoding.BinaryMarshaler. The payload is
// {1-byte tag length, tag, 16 UUID bytes}: exactly enough to reconstruct
// the value without consulting a registry at the destination.
func (id ID) MarshalBinary() ([]byte, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: cannot marshal zero identifier", Err)
	}
	buf := make([]byte, 0, 1+len(id.tag)+16)
	buf = append(buf, byte(len(id.tag)))
	buf = append(buf, id.tag...)
	buf = append(buf, id.id[:]...)
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The tag is
// re-validated against the tag grammar, but not against the registry: a
// binary payload may arrive before its kind is registered locally.
func (id *ID) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return fmt.Errorf("%w: binary payload too short", ErrInvalidUUIDFormat)
	}
	tagLen := int(data[0])
	if len(data) != 1+tagLen+16 {
		return fmt.Errorf("%w: binary payload has %d bytes, want %d", ErrInvalidUUIDFormat, len(data), 1+tagLen+16)
	}
	tag := string(data[1 : 1+tagLen])
	if err := validation.ValidateTypeTag(tag); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTypeTag, err)
	}

	var u uuid.UUID
	copy(u[:], data[1+tagLen:])
	*id = ID{tag: validation.NormalizeTypeTag(tag), id: u}
	return nil
}

// Value implements driver.Valuer so identifiers bind directly as SQL
// parameters, stored as the canonical string.
func (id ID) Value() (driver.Value, error) {
	if id.IsZero() {
		return nil, nil
	}
	return id.String(), nil
}
