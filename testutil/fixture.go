package testutil

import (
	"testing"

	"github.com/arthur-debert/typeduuid/typeduuid"
)

// SampleUUID is the UUID used across test fixtures.
const SampleUUID = "550e8400-e29b-41d4-a716-446655440000"

// SampleUserID is SampleUUID in canonical form under the "user" tag.
const SampleUserID = "user-" + SampleUUID

// Universe is a fresh registry populated with the standard test kinds.
type Universe struct {
	Registry *typeduuid.Registry
	User     *typeduuid.Kind
	Order    *typeduuid.Kind
}

// NewUniverse returns an isolated registry with the User and Order kinds
// registered. Each call builds a new registry, so tests never share state.
func NewUniverse(t *testing.T) *Universe {
	t.Helper()

	reg := typeduuid.NewRegistry()
	user, err := reg.Register("User", "user")
	if err != nil {
		t.Fatalf("failed to register user kind: %v", err)
	}
	order, err := reg.Register("Order", "order")
	if err != nil {
		t.Fatalf("failed to register order kind: %v", err)
	}

	return &Universe{Registry: reg, User: user, Order: order}
}

// RegisterDefaults registers the standard kinds in the package default
// registry and resets it when the test finishes, so tests of the
// package-level parse functions stay isolated.
func RegisterDefaults(t *testing.T) (user, order *typeduuid.Kind) {
	t.Helper()

	typeduuid.Reset()
	user = typeduuid.MustRegister("User", "user")
	order = typeduuid.MustRegister("Order", "order")
	t.Cleanup(typeduuid.Reset)
	return user, order
}
