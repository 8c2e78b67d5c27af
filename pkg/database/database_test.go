package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowerFunc(t *testing.T) {
	assert.Equal(t, SQLiteLower, LowerFunc("sqlite3"))
	assert.Equal(t, "LOWER", LowerFunc("postgres"))
}

func TestSQLiteUnicodeLower(t *testing.T) {
	ctx := context.Background()
	db, err := NewSQLite(ctx, filepath.Join(t.TempDir(), "lower.db"))
	require.NoError(t, err)
	defer db.Close()

	var got string
	require.NoError(t, db.GetContext(ctx, &got, "SELECT "+SQLiteLower+"(?)", "Торт НАПОЛЕОН"))
	assert.Equal(t, "торт наполеон", got)

	var null *string
	require.NoError(t, db.GetContext(ctx, &null, "SELECT "+SQLiteLower+"(NULL)"))
	assert.Nil(t, null)

	// a second handle reuses the registration
	other, err := NewSQLite(ctx, filepath.Join(t.TempDir(), "other.db"))
	require.NoError(t, err)
	other.Close()
}
