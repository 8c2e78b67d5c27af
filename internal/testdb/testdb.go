// Package testdb opens throwaway SQLite catalog databases for tests.
package testdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/Nomet5/cake-app-sub003/internal/schema"
	"github.com/Nomet5/cake-app-sub003/internal/seed"
	"github.com/Nomet5/cake-app-sub003/pkg/database"
)

// Open returns a migrated database in t's temp dir, closed on cleanup.
func Open(t testing.TB) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLite(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := schema.Apply(ctx, db); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

// Seeder returns a seeder on a fresh database.
func Seeder(t testing.TB) (*sqlx.DB, *seed.Seeder) {
	t.Helper()
	db := Open(t)
	return db, seed.New(db)
}
