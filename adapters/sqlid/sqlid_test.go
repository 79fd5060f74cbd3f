package sqlid

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/arthur-debert/typeduuid/testutil"
	"github.com/arthur-debert/typeduuid/typeduuid"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(`CREATE TABLE users (id TEXT PRIMARY KEY, manager_id TEXT, name TEXT NOT NULL)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return db
}

func TestColumnRoundTrip(t *testing.T) {
	u := testutil.NewUniverse(t)
	db := openTestDB(t)

	original := u.User.MustParse(testutil.SampleUserID)
	if _, err := db.Exec(`INSERT INTO users (id, name) VALUES (?, ?)`, original, "Alice"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	col := Column{Kind: u.User}
	var name string
	row := db.QueryRow(`SELECT id, name FROM users WHERE id = ?`, original)
	if err := row.Scan(&col, &name); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if !col.Valid {
		t.Fatal("scanned column reports NULL for a stored identifier")
	}
	if col.ID != original {
		t.Errorf("scanned %v, want %v", col.ID, original)
	}
	if name != "Alice" {
		t.Errorf("name = %q, want %q", name, "Alice")
	}

	var stored string
	if err := db.QueryRow(`SELECT id FROM users`).Scan(&stored); err != nil {
		t.Fatalf("raw scan failed: %v", err)
	}
	if stored != testutil.SampleUserID {
		t.Errorf("stored text = %q, want canonical form %q", stored, testutil.SampleUserID)
	}
}

func TestColumnNull(t *testing.T) {
	u := testutil.NewUniverse(t)
	db := openTestDB(t)

	if _, err := db.Exec(`INSERT INTO users (id, manager_id, name) VALUES (?, ?, ?)`,
		u.User.New(), Null(u.User), "Bob"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	manager := Column{Kind: u.User}
	if err := db.QueryRow(`SELECT manager_id FROM users`).Scan(&manager); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if manager.Valid {
		t.Errorf("NULL column scanned as valid identifier %v", manager.ID)
	}
}

func TestColumnRejectsForeignTag(t *testing.T) {
	u := testutil.NewUniverse(t)
	db := openTestDB(t)

	order := u.Order.MustParse("order-" + testutil.SampleUUID)
	if _, err := db.Exec(`INSERT INTO users (id, name) VALUES (?, ?)`, order, "Mallory"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	col := Column{Kind: u.User}
	err := db.QueryRow(`SELECT id FROM users`).Scan(&col)
	if !errors.Is(err, typeduuid.ErrTypeTagMismatch) {
		t.Errorf("expected ErrTypeTagMismatch, got %v", err)
	}
}

func TestNew(t *testing.T) {
	u := testutil.NewUniverse(t)

	t.Run("binds a matching identifier", func(t *testing.T) {
		id := u.User.New()
		col, err := New(u.User, id)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if !col.Valid || col.ID != id {
			t.Errorf("New = %+v, want valid column carrying %v", col, id)
		}
	})

	t.Run("rejects a foreign identifier", func(t *testing.T) {
		if _, err := New(u.User, u.Order.New()); !errors.Is(err, typeduuid.ErrTypeTagMismatch) {
			t.Errorf("expected ErrTypeTagMismatch, got %v", err)
		}
	})
}
