// Package sqlid adapts typed identifiers to database/sql columns. An
// identifier is stored as its canonical text form; scanning re-validates
// the tag against the kind the column is bound to, so a row from the
// wrong table cannot be read into the wrong identifier type.
package sqlid

import (
	"database/sql/driver"
	"fmt"

	"github.com/arthur-debert/typeduuid/typeduuid"
)

// Column is a scan/bind target for one identifier column of a fixed kind.
// Valid is false when the database value is NULL, mirroring sql.NullString.
type Column struct {
	Kind  *typeduuid.Kind
	ID    typeduuid.ID
	Valid bool
}

// New returns a non-NULL column value for id, validated against kind.
func New(kind *typeduuid.Kind, id typeduuid.ID) (Column, error) {
	validated, err := kind.Validate(id)
	if err != nil {
		return Column{}, err
	}
	return Column{Kind: kind, ID: validated, Valid: true}, nil
}

// Null returns a NULL column value for kind.
func Null(kind *typeduuid.Kind) Column {
	return Column{Kind: kind}
}

// Value implements driver.Valuer, binding the canonical string or NULL.
func (c Column) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	return c.ID.String(), nil
}

// Scan implements sql.Scanner. It accepts NULL, string, and []byte values;
// text must be the canonical form carrying the bound kind's tag (a plain
// UUID is accepted and tagged implicitly, matching Kind.FromString).
func (c *Column) Scan(src any) error {
	if c.Kind == nil {
		return fmt.Errorf("sqlid: column is not bound to a kind")
	}

	var text string
	switch v := src.(type) {
	case nil:
		c.ID, c.Valid = typeduuid.ID{}, false
		return nil
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("sqlid: cannot scan %T into an identifier column", src)
	}

	id, err := c.Kind.FromString(text)
	if err != nil {
		return fmt.Errorf("sqlid: scanning %s column: %w", c.Kind.Tag(), err)
	}
	c.ID, c.Valid = id, true
	return nil
}
