package sqlite

import "testing"

// newTestDB returns a *DB backed by an in-memory database that disappears
// when the test finishes. Every repository test starts from a clean store.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("creating in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}
