package gormstore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"personapi/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema_IsIdempotent(t *testing.T) {
	db := newTestDB(t)

	assert.NoError(t, EnsureSchema(context.Background(), db))
	assert.True(t, db.Migrator().HasTable("persons"))
}

func TestOpen_InMemorySQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverSQLite
	cfg.Storage.SQLite.Path = ":memory:"

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.True(t, db.Migrator().HasTable("persons"))
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "oracle"

	db, err := Open(cfg, nil)

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "unknown storage driver")
}
