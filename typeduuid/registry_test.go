package typeduuid

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestRegister(t *testing.T) {
	t.Run("creates a kind", func(t *testing.T) {
		reg := NewRegistry()
		k, err := reg.Register("User", "user")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if k.Name() != "User" {
			t.Errorf("Name() = %q, want %q", k.Name(), "User")
		}
		if k.Tag() != "user" {
			t.Errorf("Tag() = %q, want %q", k.Tag(), "user")
		}
		if k.Registry() != reg {
			t.Error("kind does not reference its issuing registry")
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		reg := NewRegistry()
		first, err := reg.Register("User", "user")
		if err != nil {
			t.Fatalf("first Register failed: %v", err)
		}
		second, err := reg.Register("User", "user")
		if err != nil {
			t.Fatalf("second Register failed: %v", err)
		}
		if first != second {
			t.Error("re-registering the same tag returned a different kind")
		}
	})

	t.Run("normalizes case", func(t *testing.T) {
		reg := NewRegistry()
		lower, _ := reg.Register("User", "user")
		upper, err := reg.Register("User", "USER")
		if err != nil {
			t.Fatalf("Register with uppercase tag failed: %v", err)
		}
		if lower != upper {
			t.Error("tags differing only in case produced different kinds")
		}
		if upper.Tag() != "user" {
			t.Errorf("stored tag = %q, want lowercase", upper.Tag())
		}
	})

	t.Run("distinct tags never alias", func(t *testing.T) {
		reg := NewRegistry()
		user, _ := reg.Register("User", "user")
		order, _ := reg.Register("Order", "order")
		if user == order {
			t.Error("different tags returned the same kind")
		}
	})

	t.Run("accepts boundary lengths", func(t *testing.T) {
		reg := NewRegistry()
		if _, err := reg.Register("X", "x"); err != nil {
			t.Errorf("1-char tag rejected: %v", err)
		}
		if _, err := reg.Register("Long", "abcd1234"); err != nil {
			t.Errorf("8-char tag rejected: %v", err)
		}
	})

	t.Run("rejects malformed tags", func(t *testing.T) {
		tests := []struct {
			name string
			tag  string
		}{
			{"empty", ""},
			{"whitespace only", "   "},
			{"too long", "toolongid"},
			{"hyphen", "user-id"},
			{"punctuation", "user@id"},
			{"internal space", "us er"},
			{"surrounding space", " user "},
		}
		reg := NewRegistry()
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := reg.Register("Invalid", tt.tag)
				if !errors.Is(err, ErrInvalidTypeTag) {
					t.Errorf("Register(%q): expected ErrInvalidTypeTag, got %v", tt.tag, err)
				}
				if !errors.Is(err, Err) {
					t.Errorf("Register(%q): error does not wrap the root Err", tt.tag)
				}
			})
		}
	})
}

func TestLookup(t *testing.T) {
	reg := NewRegistry()
	user, _ := reg.Register("User", "user")

	t.Run("finds registered tags case-insensitively", func(t *testing.T) {
		for _, tag := range []string{"user", "USER", "User"} {
			k, ok := reg.Lookup(tag)
			if !ok {
				t.Fatalf("Lookup(%q) did not find the kind", tag)
			}
			if k != user {
				t.Errorf("Lookup(%q) returned a different kind pointer", tag)
			}
		}
	})

	t.Run("reports unknown tags without error", func(t *testing.T) {
		if _, ok := reg.Lookup("nonexistent"); ok {
			t.Error("Lookup found a kind for an unregistered tag")
		}
	})
}

func TestTags(t *testing.T) {
	reg := NewRegistry()
	_, _ = reg.Register("User", "user")
	_, _ = reg.Register("Order", "order")

	got := reg.Tags()
	want := []string{"order", "user"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}

	kinds := reg.Kinds()
	if len(kinds) != 2 || kinds[0].Tag() != "order" || kinds[1].Tag() != "user" {
		t.Errorf("Kinds() not sorted by tag: %v", kinds)
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
}

func TestReset(t *testing.T) {
	reg := NewRegistry()
	user, _ := reg.Register("User", "user")
	id := user.New()

	reg.Reset()

	if _, ok := reg.Lookup("user"); ok {
		t.Error("Lookup found a kind after Reset")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", reg.Len())
	}

	// Orphaned kinds and their values stay usable as carriers.
	if id.Tag() != "user" {
		t.Errorf("orphaned value lost its tag: %q", id.Tag())
	}
	if _, err := user.FromString(id.String()); err != nil {
		t.Errorf("orphaned kind can no longer parse: %v", err)
	}

	// Re-registering mints a fresh descriptor.
	again, _ := reg.Register("User", "user")
	if again == user {
		t.Error("Register after Reset returned the orphaned kind")
	}
}

func TestRegisterConcurrent(t *testing.T) {
	t.Run("same tag yields one kind", func(t *testing.T) {
		const goroutines = 50

		reg := NewRegistry()
		var wg sync.WaitGroup
		kinds := make([]*Kind, goroutines)
		errs := make(chan error, goroutines)

		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				k, err := reg.Register("User", "user")
				if err != nil {
					errs <- fmt.Errorf("goroutine %d: %v", n, err)
					return
				}
				kinds[n] = k
			}(i)
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			t.Errorf("concurrent register error: %v", err)
		}
		for i := 1; i < goroutines; i++ {
			if kinds[i] != kinds[0] {
				t.Fatalf("goroutine %d received a different kind pointer", i)
			}
		}
		if reg.Len() != 1 {
			t.Errorf("registry holds %d kinds, want 1", reg.Len())
		}
	})

	t.Run("mixed registration and reads stay consistent", func(t *testing.T) {
		const writers = 10

		reg := NewRegistry()
		var wg sync.WaitGroup
		errs := make(chan error, writers*2)

		for i := 0; i < writers; i++ {
			wg.Add(2)
			tag := fmt.Sprintf("tag%d", i)
			go func(tag string) {
				defer wg.Done()
				if _, err := reg.Register("Kind", tag); err != nil {
					errs <- fmt.Errorf("register %s: %v", tag, err)
				}
			}(tag)
			go func(tag string) {
				defer wg.Done()
				// Snapshot reads must never observe a torn entry.
				for _, seen := range reg.Tags() {
					if _, ok := reg.Lookup(seen); !ok {
						errs <- fmt.Errorf("tag %s listed but not resolvable", seen)
					}
				}
			}(tag)
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			t.Errorf("concurrent access error: %v", err)
		}
		if reg.Len() != writers {
			t.Errorf("registry holds %d kinds, want %d", reg.Len(), writers)
		}
	})

	t.Run("registered tags are visible to lookups on other goroutines", func(t *testing.T) {
		reg := NewRegistry()
		k, _ := reg.Register("User", "user")

		done := make(chan *Kind)
		go func() {
			found, _ := reg.Lookup("user")
			done <- found
		}()
		if found := <-done; found != k {
			t.Error("lookup on another goroutine did not observe the registered kind")
		}
	})
}
