package gormstore

import (
	"context"

	"personapi/internal/errors"
	"personapi/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Explicit DDL per dialect. Identifiers are never reused: BIGSERIAL sequences only
// move forward and SQLite AUTOINCREMENT never hands out a previously used rowid.
const (
	postgresPersonsDDL = `CREATE TABLE IF NOT EXISTS ` + model.PersonsTable + ` (
	id BIGSERIAL PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL
)`

	sqlitePersonsDDL = `CREATE TABLE IF NOT EXISTS ` + model.PersonsTable + ` (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL
)`
)

// EnsureSchema creates the persons table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	var ddl string

	switch name := db.Dialector.Name(); name {
	case "postgres":
		ddl = postgresPersonsDDL
	case "sqlite":
		ddl = sqlitePersonsDDL
	default:
		return errors.Errorf("unsupported dialect: %s", name)
	}

	if err := db.WithContext(ctx).Exec(ddl).Error; err != nil {
		return errors.Wrap(err, "failed to ensure persons table")
	}

	return nil
}
