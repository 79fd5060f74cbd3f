// Package typeduuid implements typed identifiers: 128-bit UUIDs tagged
// with a short alphanumeric type tag so identifiers of different logical
// entities cannot be confused even though they share one binary shape.
//
//	Kinds and the registry
//
// Each logical entity gets a Kind, registered once per process under a
// 1-8 character alphanumeric tag:
//
//	var User = typeduuid.MustRegister("User", "user")
//
// Registration is idempotent and safe under concurrency; looking the tag
// up always yields the same *Kind, so code may test kind membership by
// pointer identity. Private registries (NewRegistry) give test harnesses
// and embedded uses full isolation from the process-wide default.
//
//	Identifiers
//
// A Kind constructs identifiers from randomness (New), from UUID values or
// text (FromUUID, FromString), and from the compact short form
// (FromShort). Every ID has two text identities:
//
//	user-550e8400-e29b-41d4-a716-446655440000   canonical: tag "-" uuid
//	user_2aUyqjCzEIiEcYMKj7TZtw                 short: tag "_" base62(uuid)
//
// Parse resolves either form back to a value of the right kind without the
// caller naming one. IDs are immutable comparable values: equality,
// ordering, and map-key behavior follow from {tag, uuid} alone.
//
// All failures wrap the package root Err; see errors.go for the taxonomy.
package typeduuid
