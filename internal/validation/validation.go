package validation

import (
	"fmt"
	"strings"
)

// Type tag grammar: 1-8 ASCII letters or digits, compared case-insensitively.
const (
	MinTagLength = 1
	MaxTagLength = 8
)

// ValidateTypeTag checks a candidate type tag against the tag grammar.
// Checks run in order so each failure reports the first violated rule.
func ValidateTypeTag(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return fmt.Errorf("type tag cannot be empty")
	}

	if len(tag) < MinTagLength || len(tag) > MaxTagLength {
		return fmt.Errorf("type tag must be %d-%d characters, got %d", MinTagLength, MaxTagLength, len(tag))
	}

	for i := 0; i < len(tag); i++ {
		if !isAlphanumeric(tag[i]) {
			return fmt.Errorf("type tag contains invalid character %q at position %d", tag[i], i)
		}
	}

	return nil
}

// NormalizeTypeTag returns the storage form of a tag. Tags are
// case-insensitive; the registry stores and compares lowercase.
func NormalizeTypeTag(tag string) string {
	return strings.ToLower(tag)
}

// ValidateUUIDText checks the strict hyphenated UUID text shape
// (8-4-4-4-12 hex digits, case-insensitive). The uuid package also accepts
// braced, urn-prefixed and compact forms; identifiers only ever carry this
// one shape, so those are rejected here.
func ValidateUUIDText(s string) error {
	const hyphenated = 36

	if s == "" {
		return fmt.Errorf("uuid text cannot be empty")
	}
	if len(s) != hyphenated {
		return fmt.Errorf("uuid text must be %d characters, got %d", hyphenated, len(s))
	}

	for i := 0; i < len(s); i++ {
		switch i {
		case 8, 13, 18, 23:
			if s[i] != '-' {
				return fmt.Errorf("uuid text missing hyphen at position %d", i)
			}
		default:
			if !isHexDigit(s[i]) {
				return fmt.Errorf("uuid text contains invalid character %q at position %d", s[i], i)
			}
		}
	}

	return nil
}

func isAlphanumeric(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
