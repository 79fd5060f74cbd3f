package typeduuid

import (
	"errors"
	"fmt"
)

// Err is the root error for every failure produced by this package.
// All specific errors wrap it, so callers can match broadly with
// errors.Is(err, typeduuid.Err) or narrowly against one of the
// sentinels below.
var Err = errors.New("typeduuid")

var (
	// ErrInvalidTypeTag reports a tag that violates the tag grammar
	// (empty, too long, or containing non-alphanumeric characters).
	ErrInvalidTypeTag = fmt.Errorf("%w: invalid type tag", Err)

	// ErrUnknownTypeTag reports a well-formed tag that is not present in
	// the registry during tag-agnostic parsing.
	ErrUnknownTypeTag = fmt.Errorf("%w: unknown type tag", Err)

	// ErrTypeTagMismatch reports input carrying a tag different from the
	// kind the caller committed to.
	ErrTypeTagMismatch = fmt.Errorf("%w: type tag mismatch", Err)

	// ErrInvalidUUIDFormat reports malformed UUID text or input that is
	// neither canonical nor short form.
	ErrInvalidUUIDFormat = fmt.Errorf("%w: invalid uuid format", Err)

	// ErrMalformedShortEncoding reports a short-form payload containing
	// bytes outside the base62 alphabet or exceeding 128 bits.
	ErrMalformedShortEncoding = fmt.Errorf("%w: malformed short encoding", Err)
)
