// Package database provides shared test helpers for the Ent client.
package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hector-oviedo/open-research/ent"
	"github.com/hector-oviedo/open-research/ent/enttest"

	_ "github.com/mattn/go-sqlite3"
)

// NewTestClient creates an in-memory SQLite client with the schema applied.
// Each test gets its own named database so parallel tests never share rows.
// The client is closed when the test ends.
func NewTestClient(t *testing.T) *ent.Client {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}
