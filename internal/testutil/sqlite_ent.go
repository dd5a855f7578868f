// Package testutil provides shared test fixtures.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"modgoviya.io/modgoviya/ent"
	"modgoviya.io/modgoviya/ent/enttest"
)

var dbSeq atomic.Int64

// OpenEnt opens an Ent client backed by a private in-memory SQLite
// database with the schema migrated, so store-backed tests run hermetically
// and in parallel.
func OpenEnt(t *testing.T) *ent.Client {
	t.Helper()

	// A named shared-cache database keeps the schema visible across the
	// pooled connections of a single test while isolating tests from each
	// other.
	dsn := fmt.Sprintf("file:authtest_%d?mode=memory&cache=shared&_fk=1", dbSeq.Add(1))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}
